package generator

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/vados/internal/bulma"
	"git.home.luguber.info/inful/vados/internal/config"
	"git.home.luguber.info/inful/vados/internal/content"
	ferrors "git.home.luguber.info/inful/vados/internal/foundation/errors"
	"git.home.luguber.info/inful/vados/internal/git"
	"git.home.luguber.info/inful/vados/internal/images"
	"git.home.luguber.info/inful/vados/internal/logfields"
	"git.home.luguber.info/inful/vados/internal/metrics"
	"git.home.luguber.info/inful/vados/internal/render"
	"git.home.luguber.info/inful/vados/internal/site"
	"git.home.luguber.info/inful/vados/internal/structure"
	"git.home.luguber.info/inful/vados/internal/workspace"
)

// Generator builds a site from a validated build configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	renderer *render.Renderer
	// workspaceBase is where remote sources are cloned, the system temp
	// directory when empty.
	workspaceBase string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithWorkspaceBase sets the directory remote sources are cloned below.
func WithWorkspaceBase(dir string) Option {
	return func(g *Generator) { g.workspaceBase = dir }
}

// New creates a Generator for cfg.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, ferrors.InternalError("nil configuration").Build()
	}
	r, err := render.New()
	if err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}, renderer: r}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// buildState is everything the stages of one build share.
type buildState struct {
	report *BuildReport

	ws        *workspace.Manager
	cloneRoot string

	sourceDir string
	imagesDir string

	writer     *site.Writer
	transcoder *images.Transcoder
	catalog    *images.Catalog
	resolver   *content.Resolver
	notifier   *content.Notifier
	index      *structure.Index

	main *config.MainConfig
	menu *config.MenuConfig
}

func (bs *buildState) cleanup() {
	if bs.ws == nil {
		return
	}
	if err := bs.ws.Cleanup(); err != nil {
		slog.Warn("Failed to clean up workspace", logfields.Error(err))
	}
}

// Build runs every stage and returns the report, also on failure.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	bs := &buildState{report: newBuildReport()}
	defer bs.cleanup()

	slog.Info("Starting build",
		logfields.BuildID(bs.report.BuildID),
		logfields.Directory(g.cfg.Source.Directory),
		slog.Int("workers", g.cfg.Build.Workers))

	err := g.runStages(ctx, bs, g.stages())
	bs.report.finish(err)

	g.recorder.ObserveBuildDuration(bs.report.End.Sub(bs.report.Start))
	g.recorder.IncBuildOutcome(string(bs.report.Outcome))

	if path := g.cfg.Report.File; path != "" {
		if perr := bs.report.Persist(path); perr != nil {
			slog.Warn("Failed to write build report", logfields.Path(path), logfields.Error(perr))
		}
	}
	slog.Info("Build finished", slog.String("summary", bs.report.Summary()))
	return bs.report, err
}

func (g *Generator) stages() []stageDef {
	var stages []stageDef
	if g.cfg.Source.Repository != nil {
		stages = append(stages, stageDef{StageClone, g.stageClone})
	}
	return append(stages,
		stageDef{StagePrepare, g.stagePrepare},
		stageDef{StageImages, g.stageImages},
		stageDef{StageContent, g.stageContent},
		stageDef{StagePages, g.stagePages},
		stageDef{StageAssets, g.stageAssets},
	)
}

func (g *Generator) stageClone(ctx context.Context, bs *buildState) error {
	bs.ws = workspace.NewManager(g.workspaceBase)
	if err := bs.ws.Create(); err != nil {
		return err
	}
	clones, err := bs.ws.Subdir("clones")
	if err != nil {
		return err
	}
	res, err := git.NewClient(clones).Clone(ctx, *g.cfg.Source.Repository, "source")
	g.recorder.ObserveCloneDuration(res.Duration, err == nil)
	if err != nil {
		return err
	}
	bs.cloneRoot = res.Path
	bs.report.Commit = res.Commit
	return nil
}

// resolveDir places relative configured directories inside the clone when
// the source is a repository.
func (bs *buildState) resolveDir(dir string) string {
	if dir == "" || bs.cloneRoot == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(bs.cloneRoot, dir)
}

func (g *Generator) stagePrepare(_ context.Context, bs *buildState) error {
	bs.sourceDir = bs.resolveDir(g.cfg.Source.Directory)
	bs.imagesDir = bs.resolveDir(g.cfg.Images.Directory)

	mainCfg, err := config.LoadMainConfig(bs.sourceDir)
	if err != nil {
		return err
	}
	menu, err := config.LoadMenuConfig(bs.sourceDir)
	if err != nil {
		return err
	}
	bs.main, bs.menu = mainCfg, menu

	bs.writer = site.NewWriter(g.cfg.Output.Directory, g.cfg.Output.MinifyEnabled())
	if g.cfg.Output.Clean {
		slog.Info("Cleaning output directory", logfields.Path(g.cfg.Output.Directory))
		if err := bs.writer.Clean(); err != nil {
			return err
		}
	}

	resolver, err := content.NewResolver(bs.sourceDir, content.DefaultCacheSize)
	if err != nil {
		return err
	}
	bs.resolver = resolver
	bs.catalog = images.NewCatalog()
	bs.transcoder = images.NewTranscoder(bs.writer, g.cfg.Images.URLPrefix)
	bs.notifier = content.NewNotifier(g.renderer, resolver, bs.catalog)
	bs.index = structure.NewIndex()
	return nil
}

func (g *Generator) stageImages(ctx context.Context, bs *buildState) error {
	if bs.imagesDir == "" {
		slog.Info("No image directory configured, skipping images")
		return nil
	}
	dirs, err := site.Directories(bs.imagesDir)
	if err != nil {
		return err
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Build.Workers)
	for _, rel := range dirs {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			refs, err := config.LoadImageList(filepath.Join(bs.imagesDir, filepath.FromSlash(rel)))
			if err != nil {
				slog.Warn("Skipping image directory", logfields.Directory(rel), logfields.Error(err))
				bs.report.AddPathIssue(IssueImageFailure, StageImages, rel, err)
				return nil
			}
			if refs == nil {
				return nil
			}
			stats := bs.transcoder.ProcessList(bs.imagesDir, rel, refs, bs.catalog)
			bs.report.addImageStats(stats)
			g.recorder.AddImageVariants(metrics.VariantEncoded, stats.Encoded)
			g.recorder.AddImageVariants(metrics.VariantSkipped, stats.Skipped)
			if stats.Failed > 0 {
				g.recorder.AddImageVariants(metrics.VariantFailed, stats.Failed)
				bs.report.AddPathIssue(IssueImageFailure, StageImages, rel,
					ferrors.ImageError("images could not be processed").
						Warning().
						WithContext("count", stats.Failed).
						Build())
			}
			slog.Debug("Processed image directory",
				logfields.Directory(rel),
				logfields.Count(stats.Processed),
				slog.Int("encoded", stats.Encoded),
				slog.Int("skipped", stats.Skipped))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	slog.Info("Images processed", logfields.Count(bs.catalog.Len()))
	return nil
}

// excluded reports whether the content directory rel lies inside the image
// or output tree, which may be nested in the source directory.
func (g *Generator) excluded(bs *buildState, rel string) bool {
	abs, err := filepath.Abs(filepath.Join(bs.sourceDir, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	for _, dir := range []string{bs.imagesDir, g.cfg.Output.Directory} {
		if dir == "" {
			continue
		}
		other, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if abs == other || strings.HasPrefix(abs, other+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (g *Generator) stageContent(ctx context.Context, bs *buildState) error {
	dirs, err := site.Directories(bs.sourceDir)
	if err != nil {
		return err
	}
	builder := content.NewBuilder(bs.sourceDir, bs.notifier)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Build.Workers)
	for _, rel := range dirs {
		if rel != "." && g.excluded(bs, rel) {
			continue
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := builder.Build(rel)
			if err != nil {
				if ferrors.IsFatal(err) {
					return err
				}
				slog.Warn("Skipping content directory", logfields.Directory(rel), logfields.Error(err))
				bs.report.AddPathIssue(IssueContentFailure, StageContent, site.PagePath(rel), err)
				return nil
			}
			if err := bs.index.Insert(entry.Item); err != nil {
				return err
			}
			if entry.Left != nil {
				if err := bs.index.SetNotifications(entry.Item.Path, structure.SideLeft, entry.Left); err != nil {
					return err
				}
			}
			if entry.Right != nil {
				if err := bs.index.SetNotifications(entry.Item.Path, structure.SideRight, entry.Right); err != nil {
					return err
				}
			}
			bs.report.addContentDirectory()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	bs.index.Sort()
	if _, ok := bs.index.Item("/"); !ok {
		return ferrors.ConfigError("content tree has no root page").
			Fatal().
			WithContext("path", bs.sourceDir).
			Build()
	}
	slog.Info("Content indexed", logfields.Count(bs.index.Len()))
	return nil
}

func (g *Generator) stagePages(ctx context.Context, bs *buildState) error {
	shared, err := g.sharedParts(bs)
	if err != nil {
		return err
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Build.Workers)
	var mu sync.Mutex
	var written []string
	for _, path := range bs.index.Paths() {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			target, fp, err := g.renderPage(bs, shared, path)
			if err != nil {
				if ferrors.IsFatal(err) {
					return err
				}
				slog.Warn("Skipping page", logfields.Path(path), logfields.Error(err))
				bs.report.AddPathIssue(IssuePageFailure, StagePages, path, err)
				return nil
			}
			bs.report.addPage(path, fp)
			g.recorder.IncPagesRendered()
			mu.Lock()
			written = append(written, target)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	slog.Info("Pages written", logfields.Count(len(written)), logfields.Directory(bs.writer.Root()))
	return nil
}

func (g *Generator) stageAssets(_ context.Context, bs *buildState) error {
	if !bs.main.DefaultJSIncluded() {
		return nil
	}
	return bs.writer.WriteRaw(bulma.DefaultJSPath, bulma.NavigationJS())
}
