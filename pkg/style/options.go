package style

import (
	"image/color"
	"strings"
)

// DefaultBackgroundAlpha is the band opacity used when none is requested.
const DefaultBackgroundAlpha uint8 = 120

// Options describes how captions are painted. It is a value type; copies
// never alias each other.
type Options struct {
	TextColor       RGB
	BackgroundColor RGB
	BackgroundAlpha uint8
	WithOutline     bool
}

// Default returns white text on a black band at alpha 120, without outline.
func Default() Options {
	return Options{
		TextColor:       RGB{R: 255, G: 255, B: 255},
		BackgroundColor: RGB{},
		BackgroundAlpha: DefaultBackgroundAlpha,
		WithOutline:     false,
	}
}

// BuildOptions builds Options from caller input.
//
// If either color is blank the defaults are returned as a whole, ignoring
// withOutline and alpha. Otherwise both colors must parse, and alpha (when
// non-nil) overrides DefaultBackgroundAlpha.
func BuildOptions(textHex, backgroundHex string, withOutline bool, alpha *uint8) (Options, error) {
	if strings.TrimSpace(textHex) == "" || strings.TrimSpace(backgroundHex) == "" {
		return Default(), nil
	}

	bg, err := HexToRGB(strings.TrimSpace(backgroundHex))
	if err != nil {
		return Options{}, err
	}
	text, err := HexToRGB(strings.TrimSpace(textHex))
	if err != nil {
		return Options{}, err
	}

	a := DefaultBackgroundAlpha
	if alpha != nil {
		a = *alpha
	}

	return Options{
		TextColor:       text,
		BackgroundColor: bg,
		BackgroundAlpha: a,
		WithOutline:     withOutline,
	}, nil
}

// TextNRGBA returns the opaque fill color for caption text.
func (o Options) TextNRGBA() color.NRGBA {
	return o.TextColor.NRGBA(255)
}

// BackgroundNRGBA returns the band color including its alpha.
func (o Options) BackgroundNRGBA() color.NRGBA {
	return o.BackgroundColor.NRGBA(o.BackgroundAlpha)
}

// OutlineColor is the fixed color of the outline pass.
var OutlineColor = color.NRGBA{A: 255}

// Paint is the color and width of a stroke pass.
type Paint struct {
	Color       color.NRGBA
	StrokeWidth float64
}
