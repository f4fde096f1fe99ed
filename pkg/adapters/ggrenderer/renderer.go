// Package ggrenderer provides the default caption renderer, built on the gg
// library. Glyph outlines are turned into gg paths so that the fill and the
// outline stroke share the exact same geometry.
package ggrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

// Name is the backend identifier used in config and CLI flags.
const Name = "gg"

// Renderer implements ports.CaptionRenderer using gg.Context.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "gg".
func (r *Renderer) Name() string {
	return Name
}

// FillBand blends c over band. dst must have its origin at (0, 0).
func (r *Renderer) FillBand(dst *image.RGBA, band pipeline.Rect, c color.NRGBA) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(c)
	dc.DrawRectangle(band.X, band.Y, band.Width, band.Height)
	dc.Fill()
}

// DrawText strokes (optionally) then fills the glyph outlines of text.
func (r *Renderer) DrawText(dst *image.RGBA, text pipeline.PlacedText, opts style.Options) error {
	origin := text.Baseline()
	segs, err := text.Glyphs.Outline(text.Text, origin.X, origin.Y)
	if err != nil {
		return fmt.Errorf("outline text: %w", err)
	}
	if len(segs) == 0 {
		return nil
	}

	dc := gg.NewContextForRGBA(dst)

	if opts.WithOutline {
		paint := text.Glyphs.OutlinePaint()
		appendPath(dc, segs)
		dc.SetColor(paint.Color)
		dc.SetLineWidth(paint.StrokeWidth)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.SetLineCap(gg.LineCapRound)
		dc.Stroke()
	}

	appendPath(dc, segs)
	dc.SetColor(opts.TextNRGBA())
	dc.SetFillRuleWinding()
	dc.Fill()
	return nil
}

// appendPath adds glyph contours to the current path, closing each one.
func appendPath(dc *gg.Context, segs sfnt.Segments) {
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dc.ClosePath()
			}
			x, y := pt(s.Args[0])
			dc.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			dc.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			dc.QuadraticTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			x3, y3 := pt(s.Args[2])
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		dc.ClosePath()
	}
}

func pt(p fixed.Point26_6) (float64, float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// Ensure Renderer implements ports.CaptionRenderer
var _ ports.CaptionRenderer = (*Renderer)(nil)
