// Package fontcache maps font sizes to the glyph metrics and paints needed to
// measure and draw caption text.
//
// A Cache is built once per process from a single typeface and shared by
// every render. Entries are created on first use and never evicted: the fit
// search tries real-valued midpoints, so the cache grows by one entry per
// distinct size ever tried. With the default bounds that is at most
// (MaxSize-MinSize) × 2^steps keys over the life of the process.
package fontcache

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/user/memedraw/pkg/pipeline"
)

var (
	// ErrNotInitialized is returned by a Cache that was not built with New.
	ErrNotInitialized = errors.New("fontcache: cache used before initialization")
	// ErrFontLoad is returned when the typeface cannot be read or parsed.
	ErrFontLoad = errors.New("fontcache: cannot load typeface")
)

// Cache is a concurrency-safe size → Entry map over one typeface.
// The zero value is not usable; every method returns ErrNotInitialized.
type Cache struct {
	font *sfnt.Font

	mu      sync.RWMutex
	entries map[float64]*Entry

	constructed atomic.Int64
}

// New parses ttf and returns a ready cache.
func New(ttf []byte) (*Cache, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return &Cache{
		font:    f,
		entries: make(map[float64]*Entry),
	}, nil
}

// GetOrCreate returns the entry for size, constructing it on first use.
// Concurrent first calls for the same size construct exactly one entry.
func (c *Cache) GetOrCreate(size float64) (*Entry, error) {
	if c == nil || c.font == nil {
		return nil, ErrNotInitialized
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("fontcache: invalid font size %v", size)
	}

	c.mu.RLock()
	e, ok := c.entries[size]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have built it between the two locks.
	if e, ok := c.entries[size]; ok {
		return e, nil
	}

	e, err := newEntry(c.font, size)
	if err != nil {
		return nil, err
	}
	c.entries[size] = e
	c.constructed.Add(1)
	return e, nil
}

// Lookup adapts GetOrCreate to the pipeline.Glyphs interface.
func (c *Cache) Lookup(size float64) (pipeline.Glyphs, error) {
	e, err := c.GetOrCreate(size)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Len returns the number of cached sizes.
func (c *Cache) Len() int {
	if c == nil || c.font == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Constructed returns how many entries have been built since New.
func (c *Cache) Constructed() int64 {
	if c == nil {
		return 0
	}
	return c.constructed.Load()
}
