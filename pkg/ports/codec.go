package ports

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses "jpeg", "jpg" or "png".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	default:
		return FormatJPEG, fmt.Errorf("unsupported output format: %q", s)
	}
}

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (ImageFormat, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatJPEG, false
	}
	f, err := ParseImageFormat(ext)
	if err != nil {
		return FormatJPEG, false
	}
	return f, true
}

// ImageCodec abstracts decoding input images and encoding results.
type ImageCodec interface {
	// Decode decodes data in any registered format and reports the format name.
	Decode(data []byte) (image.Image, string, error)

	// Encode encodes img to the specified format.
	Encode(img image.Image, format ImageFormat, quality int) ([]byte, error)
}
