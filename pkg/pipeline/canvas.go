package pipeline

import (
	"image"

	"golang.org/x/image/draw"
)

// NewCanvas copies img into a fresh RGBA buffer with its origin at (0, 0).
// Renderers draw in place on the returned canvas, so the source image is
// never modified.
func NewCanvas(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
