package pipeline

import (
	"image"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 30, 50))
	src.SetNRGBA(10, 20, color.NRGBA{G: 255, A: 255})

	dst := NewCanvas(src)
	if dst.Bounds() != image.Rect(0, 0, 20, 30) {
		t.Fatalf("expected bounds at origin, got %v", dst.Bounds())
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("expected green at origin, got %v", got)
	}
}

func TestNewCanvas_Copies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst := NewCanvas(src)
	dst.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})

	if got := src.RGBAAt(1, 1); got.R != 0 {
		t.Errorf("source modified through canvas: %v", got)
	}
}
