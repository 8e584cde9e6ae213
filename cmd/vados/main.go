package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/vados/cmd/vados/commands"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("vados"),
		kong.Description("Build a static Bulma site with responsive images from a content tree."),
		kong.Vars{"version": version.String()},
		commands.Vars(),
	)
	err := parser.Run(&commands.Global{Logger: slog.Default()}, cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
