package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/vados/internal/config"
	"git.home.luguber.info/inful/vados/internal/generator"
	"git.home.luguber.info/inful/vados/internal/logfields"
	"git.home.luguber.info/inful/vados/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string `short:"o" help:"Override output.directory"`
	Clean   bool   `help:"Empty the output directory before building"`
	Workers int    `short:"w" help:"Override build.workers"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	b.apply(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunBuild(ctx, cfg)
}

// apply layers the command line overrides onto cfg.
func (b *BuildCmd) apply(cfg *config.Config) {
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Clean {
		cfg.Output.Clean = true
	}
	if b.Workers > 0 {
		cfg.Build.Workers = b.Workers
	}
}

// RunBuild builds the site described by cfg and writes the metrics
// textfile when one is configured.
func RunBuild(ctx context.Context, cfg *config.Config) error {
	var prom *metrics.PrometheusRecorder
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	gen, err := generator.New(cfg, generator.WithRecorder(recorder))
	if err != nil {
		return err
	}
	report, buildErr := gen.Build(ctx)

	if prom != nil {
		if err := prom.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		return buildErr
	}
	fmt.Printf("Built %d pages into %s (%s)\n", report.RenderedPages, cfg.Output.Directory, report.Outcome)
	return nil
}
