// Package rasterrenderer provides an alternative caption renderer that uses
// x/image primitives directly: draw.Draw for the band, font.Drawer for the
// text fill and the freetype rasterizer's stroker for the outline.
package rasterrenderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

// Name is the backend identifier used in config and CLI flags.
const Name = "raster"

// Renderer implements ports.CaptionRenderer without gg.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns "raster".
func (r *Renderer) Name() string {
	return Name
}

// FillBand blends c over band, snapped to whole pixels.
func (r *Renderer) FillBand(dst *image.RGBA, band pipeline.Rect, c color.NRGBA) {
	rect := image.Rect(
		int(math.Round(band.X)),
		int(math.Round(band.Y)),
		int(math.Round(band.Right())),
		int(math.Round(band.Bottom())),
	).Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawText strokes (optionally) then fills text.
func (r *Renderer) DrawText(dst *image.RGBA, text pipeline.PlacedText, opts style.Options) error {
	origin := text.Baseline()

	if opts.WithOutline {
		segs, err := text.Glyphs.Outline(text.Text, origin.X, origin.Y)
		if err != nil {
			return fmt.Errorf("outline text: %w", err)
		}
		stroke(dst, segs, text.Glyphs.OutlinePaint())
	}

	src := image.NewUniform(opts.TextNRGBA())
	dot := fixed.Point26_6{X: toFixed(origin.X), Y: toFixed(origin.Y)}
	text.Glyphs.WithFace(func(face font.Face) {
		d := font.Drawer{Dst: dst, Src: src, Face: face, Dot: dot}
		d.DrawString(text.Text)
	})
	return nil
}

// stroke rasterizes the glyph contours as closed polylines in paint.
func stroke(dst *image.RGBA, segs sfnt.Segments, paint style.Paint) {
	b := dst.Bounds()
	rz := raster.NewRasterizer(b.Dx(), b.Dy())
	rz.UseNonZeroWinding = true

	var path raster.Path
	var start fixed.Point26_6
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Add1(start)
			}
			start = s.Args[0]
			path.Start(start)
			open = true
		case sfnt.SegmentOpLineTo:
			path.Add1(s.Args[0])
		case sfnt.SegmentOpQuadTo:
			path.Add2(s.Args[0], s.Args[1])
		case sfnt.SegmentOpCubeTo:
			path.Add3(s.Args[0], s.Args[1], s.Args[2])
		}
	}
	if !open {
		return
	}
	path.Add1(start)

	rz.AddStroke(path, toFixed(paint.StrokeWidth), raster.RoundCapper, raster.RoundJoiner)

	painter := raster.NewRGBAPainter(dst)
	painter.SetColor(paint.Color)
	rz.Rasterize(painter)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Ensure Renderer implements ports.CaptionRenderer
var _ ports.CaptionRenderer = (*Renderer)(nil)
