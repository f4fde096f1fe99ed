// Package fit implements the font-fit stage: the search for the largest font
// size at which a caption fits the image width.
package fit

import (
	"context"
	"fmt"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
)

// Bounds fixes the searchable size domain and the horizontal padding.
type Bounds struct {
	MinSize float64
	MaxSize float64
	Padding float64 // added on both sides of the text
}

// DefaultBounds returns sizes 10..100 with 28px padding.
func DefaultBounds() Bounds {
	return Bounds{
		MinSize: 10,
		MaxSize: 100,
		Padding: 28,
	}
}

// Validate reports bounds that cannot be searched.
func (b Bounds) Validate() error {
	if b.MinSize <= 0 {
		return fmt.Errorf("fit: min size must be positive, got %v", b.MinSize)
	}
	if b.MaxSize < b.MinSize {
		return fmt.Errorf("fit: max size %v below min size %v", b.MaxSize, b.MinSize)
	}
	if b.Padding < 0 {
		return fmt.Errorf("fit: negative padding %v", b.Padding)
	}
	return nil
}

// Source hands out glyphs for a font size.
type Source interface {
	Lookup(size float64) (pipeline.Glyphs, error)
}

// Solve binary-searches [MinSize, MaxSize] for the largest size whose
// measured width plus 2*Padding does not exceed maxWidth. If no size fits it
// returns MinSize.
//
// The search relies on width being non-decreasing in size. The returned
// measurement always belongs to the returned size, never to the last size tried.
func Solve(src Source, text string, maxWidth int, b Bounds) (pipeline.FitResult, error) {
	low, high := b.MinSize, b.MaxSize
	limit := float64(maxWidth)

	var best pipeline.FitResult
	found := false
	steps := 0

	for low <= high {
		mid := (low + high) / 2
		g, err := src.Lookup(mid)
		if err != nil {
			return pipeline.FitResult{}, fmt.Errorf("lookup size %.3f: %w", mid, err)
		}
		steps++

		m, err := g.Measure(text)
		if err != nil {
			return pipeline.FitResult{}, fmt.Errorf("measure at %.3f: %w", mid, err)
		}
		if m.Width+2*b.Padding > limit {
			high = mid - 1
		} else {
			best = pipeline.FitResult{Size: mid, Measured: m, Glyphs: g}
			found = true
			low = mid + 1
		}
	}

	if !found {
		g, err := src.Lookup(b.MinSize)
		if err != nil {
			return pipeline.FitResult{}, fmt.Errorf("fallback size %.3f: %w", b.MinSize, err)
		}
		m, err := g.Measure(text)
		if err != nil {
			return pipeline.FitResult{}, fmt.Errorf("measure at %.3f: %w", b.MinSize, err)
		}
		best = pipeline.FitResult{Size: b.MinSize, Measured: m, Glyphs: g}
	}

	best.Steps = steps
	return best, nil
}

// Stage wraps Solve as a pipeline stage.
type Stage struct {
	src    Source
	bounds Bounds
	logger ports.Logger
}

// NewStage creates a new fit stage.
func NewStage(src Source, bounds Bounds, logger ports.Logger) *Stage {
	return &Stage{
		src:    src,
		bounds: bounds,
		logger: logger.WithComponent("fit"),
	}
}

// Execute picks the font size for input.Text.
func (s *Stage) Execute(ctx context.Context, input pipeline.FitInput) (pipeline.FitResult, error) {
	result, err := Solve(s.src, input.Text, input.MaxWidth, s.bounds)
	if err != nil {
		return result, err
	}
	s.logger.Debug("Fitted %q at %.2fpx in %d steps (width %.1f of %d)",
		input.Text, result.Size, result.Steps, result.Measured.Width, input.MaxWidth)
	return result, nil
}
