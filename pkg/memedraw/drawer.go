package memedraw

import (
	"context"

	"github.com/user/memedraw/pkg/adapters/imagecodec"
	"github.com/user/memedraw/pkg/adapters/logger"
	"github.com/user/memedraw/pkg/adapters/nullsink"
	"github.com/user/memedraw/pkg/adapters/osfilesystem"
	"github.com/user/memedraw/pkg/fontcache"
	"github.com/user/memedraw/pkg/orchestrator"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/stages/caption"
	"github.com/user/memedraw/pkg/stages/fit"
)

// Options configures a Drawer. Zero values select defaults: the embedded
// typeface, the gg backend, fit.DefaultBounds, a silent logger, no debug
// output and the OS filesystem.
type Options struct {
	Backend    string
	FontPath   string
	Bounds     fit.Bounds
	Logger     ports.Logger
	Sink       ports.DebugSink
	FileSystem ports.FileSystem
}

// Drawer wires the font cache, a renderer and the pipeline together.
// It is safe for concurrent use; all callers share one font cache.
type Drawer struct {
	backend string
	cache   *fontcache.Cache
	orch    *orchestrator.Orchestrator
}

// New creates a Drawer.
func New(opts Options) (*Drawer, error) {
	if opts.Logger == nil {
		opts.Logger = logger.NewNoop()
	}
	if opts.Sink == nil {
		opts.Sink = nullsink.New()
	}
	if opts.FileSystem == nil {
		opts.FileSystem = osfilesystem.New()
	}
	if opts.Bounds == (fit.Bounds{}) {
		opts.Bounds = fit.DefaultBounds()
	}
	if err := opts.Bounds.Validate(); err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(opts.Backend)
	if err != nil {
		return nil, err
	}
	cache, err := fontcache.Load(opts.FontPath)
	if err != nil {
		return nil, err
	}

	stage := caption.NewStage(cache, renderer, opts.Bounds, opts.Logger)
	return &Drawer{
		backend: renderer.Name(),
		cache:   cache,
		orch:    orchestrator.New(stage, imagecodec.New(), opts.FileSystem, opts.Sink, opts.Logger),
	}, nil
}

// Backend returns the renderer name in use.
func (d *Drawer) Backend() string {
	return d.backend
}

// Cache returns the shared font cache.
func (d *Drawer) Cache() *fontcache.Cache {
	return d.cache
}

// Orchestrator returns the underlying pipeline for file and batch runs.
func (d *Drawer) Orchestrator() *orchestrator.Orchestrator {
	return d.orch
}

// Config converts req into an orchestrator config for this drawer.
func (d *Drawer) Config(req Request, inputPath, outputPath string) (orchestrator.Config, error) {
	cfg, err := req.ToOrchestratorConfig(inputPath, outputPath)
	if err != nil {
		return cfg, err
	}
	cfg.Backend = d.backend
	return cfg, nil
}

// Draw captions an encoded image in memory and returns the encoded result.
func (d *Drawer) Draw(ctx context.Context, image []byte, req Request) ([]byte, error) {
	out, _, err := d.DrawWithResult(ctx, image, req)
	return out, err
}

// DrawWithResult is Draw that also reports sizes, layouts and timings.
func (d *Drawer) DrawWithResult(ctx context.Context, image []byte, req Request) ([]byte, orchestrator.RunResult, error) {
	cfg, err := d.Config(req, "", "")
	if err != nil {
		return nil, orchestrator.RunResult{}, err
	}
	return d.orch.DrawOnImage(ctx, image, cfg)
}
