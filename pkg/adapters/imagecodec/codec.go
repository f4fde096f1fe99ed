// Package imagecodec decodes input pictures and encodes finished memes.
//
// Decoding accepts every format registered with the image package: JPEG,
// PNG and GIF from the standard library plus WebP, BMP and TIFF from
// golang.org/x/image. Encoding produces JPEG or PNG.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/memedraw/pkg/ports"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// ErrUnsupportedImage is returned when input bytes are not a known image format.
var ErrUnsupportedImage = errors.New("unsupported image data")

// Codec implements ports.ImageCodec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode decodes data and reports the detected format name.
func (c *Codec) Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("decode: empty input: %w", ErrUnsupportedImage)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("decode: %w", ErrUnsupportedImage)
		}
		return nil, "", fmt.Errorf("decode %s: %w", format, err)
	}
	return img, format, nil
}

// Encode encodes img to format. Quality applies to JPEG only; values outside
// 1..100 fall back to DefaultQuality.
func (c *Codec) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.DefaultCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

var _ ports.ImageCodec = (*Codec)(nil)
