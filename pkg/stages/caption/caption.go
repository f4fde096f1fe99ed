// Package caption implements the caption stage: it fits, lays out and
// draws the top and bottom captions onto a canvas.
package caption

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/stages/fit"
	"github.com/user/memedraw/pkg/stages/layout"
)

// ErrCanvasOrigin is returned for a canvas whose bounds do not start at (0, 0).
// Bands and anchors are computed in canvas coordinates from the origin.
var ErrCanvasOrigin = errors.New("caption: canvas origin must be (0, 0)")

// Stage draws captions in place on the input canvas.
type Stage struct {
	fit      pipeline.Stage[pipeline.FitInput, pipeline.FitResult]
	layout   pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	renderer ports.CaptionRenderer
	padding  float64
	logger   ports.Logger
}

// NewStage creates a new caption stage.
func NewStage(src fit.Source, renderer ports.CaptionRenderer, bounds fit.Bounds, logger ports.Logger) *Stage {
	return &Stage{
		fit:      fit.NewStage(src, bounds, logger),
		layout:   layout.NewStage(),
		renderer: renderer,
		padding:  bounds.Padding,
		logger:   logger.WithComponent("caption"),
	}
}

// drawOrder puts bottom captions before top ones, so where bands overlap
// on short images the top caption ends up above.
func drawOrder(captions []pipeline.Caption) []pipeline.Caption {
	ordered := make([]pipeline.Caption, len(captions))
	copy(ordered, captions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Placement == pipeline.PlacementBottom &&
			ordered[j].Placement != pipeline.PlacementBottom
	})
	return ordered
}

// Normalize returns the text that is measured and drawn for raw input:
// surrounding whitespace removed, upper-cased.
func Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// Execute draws each non-empty caption. The canvas is modified in place.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptionInput) (pipeline.CaptionResult, error) {
	if input.Canvas == nil {
		return pipeline.CaptionResult{}, fmt.Errorf("caption: nil canvas")
	}
	if o := input.Canvas.Bounds().Min; o != (image.Point{}) {
		return pipeline.CaptionResult{}, fmt.Errorf("%w, got %v", ErrCanvasOrigin, o)
	}

	size := input.Canvas.Bounds().Size()
	result := pipeline.CaptionResult{Placed: []pipeline.PlacedCaption{}}

	for _, c := range drawOrder(input.Captions) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		text := Normalize(c.Text)
		if text == "" {
			s.logger.Debug("Skipping empty %s caption", c.Placement)
			continue
		}

		fitted, err := s.fit.Execute(ctx, pipeline.FitInput{Text: text, MaxWidth: size.X})
		if err != nil {
			return result, fmt.Errorf("fit %s caption: %w", c.Placement, err)
		}

		placed, err := s.layout.Execute(ctx, pipeline.LayoutInput{
			Measured:    fitted.Measured,
			ImageWidth:  size.X,
			ImageHeight: size.Y,
			Placement:   c.Placement,
			Padding:     s.padding,
		})
		if err != nil {
			return result, fmt.Errorf("layout %s caption: %w", c.Placement, err)
		}
		if placed.Degenerate {
			s.logger.Warn("%s band (%.0fpx) is taller than the image (%dpx); captions may overlap",
				c.Placement, placed.Band.Height, size.Y)
		}

		s.renderer.FillBand(input.Canvas, placed.Band, input.Style.BackgroundNRGBA())

		err = s.renderer.DrawText(input.Canvas, pipeline.PlacedText{
			Text:     text,
			Glyphs:   fitted.Glyphs,
			Measured: fitted.Measured,
			Layout:   placed,
		}, input.Style)
		if err != nil {
			return result, fmt.Errorf("draw %s caption: %w", c.Placement, err)
		}

		s.logger.Debug("Caption %s: %.2fpx, band %.0fx%.0f at y=%.1f",
			c.Placement, fitted.Size, placed.Band.Width, placed.Band.Height, placed.Band.Y)

		result.Placed = append(result.Placed, pipeline.PlacedCaption{
			Placement: c.Placement,
			Text:      text,
			FontSize:  fitted.Size,
			Steps:     fitted.Steps,
			Measured:  fitted.Measured,
			Layout:    placed,
		})
	}

	return result, nil
}
