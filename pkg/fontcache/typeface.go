package fontcache

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
)

// NewDefault builds a cache over the embedded Go Bold typeface.
func NewDefault() (*Cache, error) {
	return New(gobold.TTF)
}

// Load builds a cache from a TTF/OTF file. An empty path selects the
// embedded typeface.
func Load(path string) (*Cache, error) {
	if path == "" {
		return NewDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return New(data)
}
