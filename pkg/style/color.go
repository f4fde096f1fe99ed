// Package style resolves caption colors and builds the immutable style
// options used when compositing captions.
package style

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned when a hex color string is malformed.
var ErrInvalidColor = errors.New("style: invalid hex color")

// RGB is an opaque 8-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NRGBA returns the color with the given alpha, not premultiplied.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexToRGB parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func HexToRGB(s string) (RGB, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidColor, s)
	}

	var v [6]uint8
	for i := 0; i < 6; i++ {
		d, ok := hexValue(hex[i])
		if !ok {
			return RGB{}, fmt.Errorf("%w: %q has non-hex character %q", ErrInvalidColor, s, hex[i])
		}
		v[i] = d
	}

	return RGB{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
