package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/vados/internal/config"
)

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, Vars(), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	return parser
}

func TestParseBuildFlags(t *testing.T) {
	cli := &CLI{}
	ctx, err := newParser(t, cli).Parse([]string{"-c", "site.yaml", "build", "-o", "out", "--clean", "-w", "3"})
	require.NoError(t, err)
	assert.Equal(t, "build", ctx.Command())
	assert.Equal(t, "out", cli.Build.Output)
	assert.True(t, cli.Build.Clean)
	assert.Equal(t, 3, cli.Build.Workers)
	assert.Equal(t, "site.yaml", filepath.Base(cli.Config))
}

func TestParseDefaultsToBuild(t *testing.T) {
	cli := &CLI{}
	ctx, err := newParser(t, cli).Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "build", ctx.Command())
	assert.Equal(t, config.DefaultConfigFile, filepath.Base(cli.Config))
}

func TestBuildCmdApply(t *testing.T) {
	cfg := &config.Config{Output: config.OutputConfig{Directory: "public"}, Build: config.BuildConfig{Workers: 8}}
	(&BuildCmd{}).apply(cfg)
	assert.Equal(t, "public", cfg.Output.Directory)
	assert.Equal(t, 8, cfg.Build.Workers)

	(&BuildCmd{Output: "dist", Clean: true, Workers: 2}).apply(cfg)
	assert.Equal(t, "dist", cfg.Output.Directory)
	assert.True(t, cfg.Output.Clean)
	assert.Equal(t, 2, cfg.Build.Workers)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		env     string
		verbose bool
		want    slog.Level
	}{
		{"", false, slog.LevelInfo},
		{"", true, slog.LevelDebug},
		{"error", true, slog.LevelDebug},
		{"WARN", false, slog.LevelWarn},
		{"error", false, slog.LevelError},
		{"debug", false, slog.LevelDebug},
		{"bogus", false, slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("VADOS_LOG_LEVEL", tt.env)
			assert.Equal(t, tt.want, parseLogLevel(tt.verbose))
		})
	}
}

func TestRunInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, RunInit(path, false))
	assert.FileExists(t, path)
	assert.Error(t, RunInit(path, false))
	assert.NoError(t, RunInit(path, true))
}

func TestRunBuildWritesMetrics(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(data), 0o600))
	}
	write(config.MainFile, `{"siteTitle": "S", "footerContent": "<p>f</p>", "includeDefaultJs": false}`)
	write(config.MenuFile, `{}`)
	write(config.PageFile, `{"title": "Home", "content": "<p>home</p>"}`)

	textfile := filepath.Join(t.TempDir(), "vados.prom")
	cfg := &config.Config{
		Source:  config.SourceConfig{Directory: src},
		Output:  config.OutputConfig{Directory: out},
		Build:   config.BuildConfig{Workers: 1},
		Metrics: config.MetricsConfig{Textfile: textfile},
	}
	require.NoError(t, RunBuild(context.Background(), cfg))
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.NoFileExists(t, filepath.Join(out, "js", "vados.js"))

	data, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vados_pages_rendered_total 1")
}
