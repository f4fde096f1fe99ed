// Package orchestrator runs the meme pipeline: read, decode, caption,
// encode, write.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

// Config contains all configuration for one meme.
type Config struct {
	// Input/Output
	InputPath  string
	OutputPath string

	// Captions
	TopText    string
	BottomText string
	Style      style.Options

	// Encoding
	Format  ports.ImageFormat
	Quality int // JPEG quality 1..100

	// Backend names the renderer the caption stage was built with.
	// It is reported in RunResult only.
	Backend string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Style:   style.Default(),
		Format:  ports.FormatJPEG,
		Quality: 90,
		Backend: "gg",
	}
}

// Captions returns the top and bottom captions in input form.
func (c Config) Captions() []pipeline.Caption {
	return []pipeline.Caption{
		{Text: c.TopText, Placement: pipeline.PlacementTop},
		{Text: c.BottomText, Placement: pipeline.PlacementBottom},
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	captionStage pipeline.Stage[pipeline.CaptionInput, pipeline.CaptionResult]
	codec        ports.ImageCodec
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	captionStage pipeline.Stage[pipeline.CaptionInput, pipeline.CaptionResult],
	codec ports.ImageCodec,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		captionStage: captionStage,
		codec:        codec,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// Run reads config.InputPath, draws the captions and writes the encoded
// result to config.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))
	started := time.Now()

	data, err := o.fs.ReadFile(config.InputPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input: %s", err))
		return RunResult{}, fmt.Errorf("read input: %w", err)
	}

	out, result, err := o.DrawOnImage(ctx, data, config)
	if err != nil {
		return result, err
	}

	if err := o.fs.WriteFile(config.OutputPath, out); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return result, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", config.OutputPath))

	result.InputPath = config.InputPath
	result.OutputPath = config.OutputPath
	result.TotalTime = time.Since(started)

	o.logger.Info(l10n.T("Pipeline completed successfully"))
	return result, nil
}

// DrawOnImage decodes data, draws the captions of config onto it and
// returns the encoded image. Empty captions are skipped; with both empty
// the output is the re-encoded input.
func (o *Orchestrator) DrawOnImage(ctx context.Context, data []byte, config Config) ([]byte, RunResult, error) {
	result := RunResult{
		Backend:      config.Backend,
		OutputFormat: config.Format.String(),
		Quality:      config.Quality,
	}

	// 1. Decode
	t := time.Now()
	img, format, err := o.codec.Decode(data)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode image: %s", err))
		return nil, result, fmt.Errorf("decode: %w", err)
	}
	canvas := pipeline.NewCanvas(img)
	result.DecodeTime = time.Since(t)
	result.InputFormat = format
	result.Width = canvas.Bounds().Dx()
	result.Height = canvas.Bounds().Dy()
	o.logger.Debug(l10n.F("Decoded %s image: %dx%d", format, result.Width, result.Height))

	// 2. Captions
	o.logger.Info(l10n.F("Drawing captions on %s", displayName(config)))
	t = time.Now()
	captions, err := o.captionStage.Execute(ctx, pipeline.CaptionInput{
		Canvas:   canvas,
		Captions: config.Captions(),
		Style:    config.Style,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to draw captions: %s", err))
		return nil, result, fmt.Errorf("caption stage: %w", err)
	}
	result.DrawTime = time.Since(t)
	result.Captions = captions.Placed

	if o.sink.Enabled() {
		o.saveDebug(displayName(config), captions.Placed, canvas)
	}

	if err := ctx.Err(); err != nil {
		return nil, result, err
	}

	// 3. Encode
	o.logger.Debug(l10n.F("Encoding %s with quality %d", config.Format, config.Quality))
	t = time.Now()
	out, err := o.codec.Encode(canvas, config.Format, config.Quality)
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return nil, result, fmt.Errorf("encode: %w", err)
	}
	result.EncodeTime = time.Since(t)
	result.OutputBytes = len(out)
	o.logger.Debug(l10n.F("Encoded %d bytes", len(out)))

	return out, result, nil
}

// saveDebug hands the caption layout and canvas to the sink. Failures are
// logged and do not fail the run.
func (o *Orchestrator) saveDebug(name string, placed []pipeline.PlacedCaption, canvas image.Image) {
	data, err := json.MarshalIndent(placed, "", "  ")
	if err == nil {
		err = o.sink.SaveCaptionsJSON(name, data)
	}
	if err != nil {
		o.logger.Warn(l10n.F("Failed to save debug captions for %s: %s", name, err))
	}
	if err := o.sink.SaveCanvas(name, canvas); err != nil {
		o.logger.Warn(l10n.F("Failed to save debug canvas for %s: %s", name, err))
	}
}

func displayName(config Config) string {
	if config.OutputPath != "" {
		return config.OutputPath
	}
	if config.InputPath != "" {
		return config.InputPath
	}
	return "meme"
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	InputPath  string
	OutputPath string
	Backend    string

	// Image information
	InputFormat string
	Width       int
	Height      int

	// Captions in draw order
	Captions []pipeline.PlacedCaption

	// Output information
	OutputFormat string
	Quality      int
	OutputBytes  int

	// Timing information
	DecodeTime time.Duration
	DrawTime   time.Duration
	EncodeTime time.Duration
	TotalTime  time.Duration
}
