// Package layout implements the caption layout stage.
package layout

import (
	"context"

	"github.com/user/memedraw/pkg/pipeline"
)

// Stage computes band and anchor geometry for a caption.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute computes the layout for input.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	return Compute(input.Measured, input.ImageWidth, input.ImageHeight, input.Placement, input.Padding), nil
}

// Compute places the background band and the text box.
//
//   - band height = measured height + 2*padding, band width = image width
//   - top band starts at (0, 0); bottom band ends at (width, height)
//   - the text box is centered horizontally in the image and vertically
//     in the band
//
// Bands are not clamped. On short images or with very large text the band
// may be taller than the image and the two bands may overlap; the result is
// flagged Degenerate and drawn anyway.
func Compute(measured pipeline.MeasuredText, imageWidth, imageHeight int, placement pipeline.Placement, padding float64) pipeline.LayoutResult {
	w := float64(imageWidth)
	h := float64(imageHeight)
	bandHeight := measured.Height + 2*padding

	bandY := 0.0
	if placement == pipeline.PlacementBottom {
		bandY = h - bandHeight
	}

	return pipeline.LayoutResult{
		Band: pipeline.Rect{
			X:      0,
			Y:      bandY,
			Width:  w,
			Height: bandHeight,
		},
		Anchor: pipeline.Point{
			X: w/2 - measured.Width/2,
			Y: bandY + bandHeight/2 - measured.Height/2,
		},
		Degenerate: bandHeight > h,
	}
}
