// Package ports defines interfaces for external dependencies.
package ports

import (
	"image"
	"image/color"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/style"
)

// CaptionRenderer paints caption bands and text onto an RGBA buffer.
// Implementations must not retain dst and must be safe for concurrent use
// on distinct buffers.
type CaptionRenderer interface {
	// Name identifies the backend, e.g. "gg".
	Name() string

	// FillBand blends c over the pixels inside band.
	FillBand(dst *image.RGBA, band pipeline.Rect, c color.NRGBA)

	// DrawText draws text.Text at its baseline. When opts.WithOutline is
	// set, a stroke in text.Glyphs.OutlinePaint() is drawn first and the
	// fill in opts.TextColor goes on top of it.
	DrawText(dst *image.RGBA, text pipeline.PlacedText, opts style.Options) error
}
