// Package main provides the CLI entry point for memedraw.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/memedraw/pkg/adapters/filesink"
	"github.com/user/memedraw/pkg/adapters/imagecodec"
	"github.com/user/memedraw/pkg/adapters/logger"
	"github.com/user/memedraw/pkg/adapters/nullsink"
	"github.com/user/memedraw/pkg/adapters/osfilesystem"
	"github.com/user/memedraw/pkg/config"
	"github.com/user/memedraw/pkg/memedraw"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Draw    DrawCmd    `cmd:"" help:"Draw top and bottom captions on an image."`
	Batch   BatchCmd   `cmd:"" help:"Draw captions for every job in a YAML manifest."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// CommonFlags are shared by draw and batch.
type CommonFlags struct {
	// Configuration
	Config string `short:"C" type:"existingfile" help:"YAML configuration file."`

	// Rendering
	Backend  *string `help:"Caption renderer (gg or raster)."`
	FontPath *string `name:"font" help:"TrueType/OpenType font file (default: embedded Go Bold)."`

	// Font fitting
	MinFontSize *float64 `help:"Smallest font size the fit search may choose (default: 10)."`
	MaxFontSize *float64 `help:"Largest font size the fit search may choose (default: 100)."`
	Padding     *float64 `help:"Horizontal padding subtracted from the image width (default: 28)."`

	// Debug options
	Debug    bool    `short:"d" help:"Save the captioned canvas and caption layout for each image."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Summary
	Summary string `short:"s" help:"Write a Markdown summary to this path."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// DrawCmd defines the draw subcommand.
type DrawCmd struct {
	// Required arguments
	Input  string `arg:"" type:"existingfile" help:"Source image (JPEG, PNG, GIF, BMP, TIFF or WebP)."`
	Output string `short:"o" required:"" help:"Output image path."`

	// Captions
	Top    string `short:"t" help:"Top caption."`
	Bottom string `short:"b" help:"Bottom caption."`

	// Style options
	TextColor         *string `help:"Text color (hex, e.g., #ffffff). Needs --background-color."`
	BackgroundColor   *string `help:"Band color (hex, e.g., #000000). Needs --text-color."`
	BackgroundOpacity *int    `help:"Band opacity (0-255, default: 120)."`
	Outline           bool    `help:"Draw a black outline around the text."`

	// Encoding options
	Format  *string `short:"f" help:"Output format (jpeg or png, default: from the output extension)."`
	Quality *int    `short:"q" help:"JPEG quality (1-100, default: 90)."`

	CommonFlags `embed:""`
}

// BatchCmd defines the batch subcommand.
type BatchCmd struct {
	Manifest string `arg:"" type:"existingfile" help:"YAML manifest listing the jobs."`
	Workers  *int   `short:"w" help:"Number of images drawn in parallel (default: number of CPUs)."`

	CommonFlags `embed:""`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("memedraw"),
		kong.Description("Overlay meme captions on images."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the draw command.
func (cmd *DrawCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	log := cmd.newLogger(cfg)

	ctx, cancel := signalContext(log)
	defer cancel()

	req, err := cmd.buildRequest(cfg)
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	sink, err := cmd.newSink(cfg, fs)
	if err != nil {
		return err
	}

	opts := cfg.DrawerOptions()
	opts.Logger = log
	opts.Sink = sink
	opts.FileSystem = fs
	drawer, err := memedraw.New(opts)
	if err != nil {
		return err
	}

	orchConfig, err := drawer.Config(req, cmd.Input, cmd.Output)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Using %s renderer", drawer.Backend()))

	result, err := drawer.Orchestrator().Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if cmd.Summary != "" {
		s := runSummary(result, orchConfig, cfg)
		if err := writeSummary(cmd.Summary, s, fs); err != nil {
			return err
		}
		log.Info(l10n.F("Summary saved to %s", cmd.Summary))
	}
	return nil
}

// buildRequest creates a Request from the configuration and CLI overrides.
func (cmd *DrawCmd) buildRequest(cfg config.Config) (memedraw.Request, error) {
	builder, err := cfg.RequestBuilder()
	if err != nil {
		return memedraw.Request{}, err
	}

	builder.WithTopText(cmd.Top).WithBottomText(cmd.Bottom)

	if cmd.TextColor != nil {
		builder.WithTextColor(*cmd.TextColor)
	}
	if cmd.BackgroundColor != nil {
		builder.WithBackgroundColor(*cmd.BackgroundColor)
	}
	if cmd.BackgroundOpacity != nil {
		if *cmd.BackgroundOpacity < 0 || *cmd.BackgroundOpacity > 255 {
			return memedraw.Request{}, fmt.Errorf("background opacity %d out of range 0-255", *cmd.BackgroundOpacity)
		}
		builder.WithBackgroundOpacity(uint8(*cmd.BackgroundOpacity))
	}
	if cmd.Outline {
		builder.WithOutline(true)
	}

	// Explicit flag, then output extension, then configuration.
	switch {
	case cmd.Format != nil:
		format, err := ports.ParseImageFormat(*cmd.Format)
		if err != nil {
			return memedraw.Request{}, err
		}
		builder.WithFormat(format)
	default:
		if format, ok := ports.FormatFromPath(cmd.Output); ok {
			builder.WithFormat(format)
		}
	}
	if cmd.Quality != nil {
		builder.WithQuality(*cmd.Quality)
	}

	return builder.Build(), nil
}

// Run executes the batch command.
func (cmd *BatchCmd) Run() error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	log := cmd.newLogger(cfg)

	ctx, cancel := signalContext(log)
	defer cancel()

	manifest, err := config.LoadManifest(cmd.Manifest)
	if err != nil {
		return err
	}
	jobs, err := manifest.OrchestratorConfigs(cfg)
	if err != nil {
		return err
	}

	fs := osfilesystem.New()
	sink, err := cmd.newSink(cfg, fs)
	if err != nil {
		return err
	}

	opts := cfg.DrawerOptions()
	opts.Logger = log
	opts.Sink = sink
	opts.FileSystem = fs
	drawer, err := memedraw.New(opts)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Using %s renderer", drawer.Backend()))

	result := drawer.Orchestrator().RunBatch(ctx, jobs, cfg.Workers)

	if cmd.Summary != "" {
		s := batchSummary(result, cfg)
		if err := writeSummary(cmd.Summary, s, fs); err != nil {
			return err
		}
		log.Info(l10n.F("Summary saved to %s", cmd.Summary))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if result.Failed > 0 {
		return errors.New(l10n.F("%d of %d jobs failed", result.Failed, len(result.Items)))
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("memedraw version %s", version))
	return nil
}

// loadConfig reads the configuration file, if any, and applies CLI overrides.
func (f *CommonFlags) loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if f.Config != "" {
		loaded, err := config.LoadFromFile(f.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if f.Backend != nil {
		cfg.Backend = *f.Backend
	}
	if f.FontPath != nil {
		cfg.FontPath = *f.FontPath
	}
	if f.MinFontSize != nil {
		cfg.MinFontSize = *f.MinFontSize
	}
	if f.MaxFontSize != nil {
		cfg.MaxFontSize = *f.MaxFontSize
	}
	if f.Padding != nil {
		cfg.Padding = *f.Padding
	}
	if f.Debug {
		cfg.Debug = true
	}
	if f.DebugDir != nil {
		cfg.DebugDir = *f.DebugDir
	}
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (f *CommonFlags) newLogger(cfg config.Config) ports.Logger {
	if f.Quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
}

func (f *CommonFlags) newSink(cfg config.Config, fs ports.FileSystem) (ports.DebugSink, error) {
	if !cfg.Debug {
		return nullsink.New(), nil
	}
	if err := fs.MkdirAll(cfg.DebugDir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.New(cfg.DebugDir, fs, imagecodec.New()), nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func writeSummary(path string, s *summarizer.Summary, fs ports.FileSystem) error {
	if s == nil {
		return errors.New("empty summary")
	}
	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	if err := summarizer.NewWriter(formatter, fs).Write(path, s); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
