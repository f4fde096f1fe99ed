package fontcache

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/style"
)

// MinStrokeWidth is the thinnest outline drawn at any size.
const MinStrokeWidth = 2.0

// StrokeWidthFor returns max(2, size/12).
func StrokeWidthFor(size float64) float64 {
	return math.Max(MinStrokeWidth, size/12)
}

// Entry holds everything needed to measure and draw at one font size.
// It is immutable after construction except for the face, which is guarded.
type Entry struct {
	size    float64
	ppem    fixed.Int26_6
	font    *sfnt.Font
	metrics font.Metrics

	outline style.Paint

	faceMu sync.Mutex
	face   font.Face

	bufs sync.Pool
}

func newEntry(f *sfnt.Font, size float64) (*Entry, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("fontcache: create face at %.2f: %w", size, err)
	}

	e := &Entry{
		size: size,
		ppem: toFixed(size),
		font: f,
		face: face,
		outline: style.Paint{
			Color:       style.OutlineColor,
			StrokeWidth: StrokeWidthFor(size),
		},
	}
	e.bufs.New = func() any { return new(sfnt.Buffer) }

	buf := e.buffer()
	defer e.bufs.Put(buf)
	e.metrics, err = f.Metrics(buf, e.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("fontcache: metrics at %.2f: %w", size, err)
	}
	return e, nil
}

// Size returns the font size in pixels.
func (e *Entry) Size() float64 {
	return e.size
}

// OutlinePaint returns the stroke drawn under the fill when outlining.
func (e *Entry) OutlinePaint() style.Paint {
	return e.outline
}

// Measure returns the advance width of text (kerning included) and the
// ascent+descent line box. Safe for concurrent use.
func (e *Entry) Measure(text string) (pipeline.MeasuredText, error) {
	buf := e.buffer()
	defer e.bufs.Put(buf)

	width, err := e.walk(buf, text, nil)
	if err != nil {
		return pipeline.MeasuredText{}, err
	}

	ascent := fromFixed(e.metrics.Ascent)
	return pipeline.MeasuredText{
		Width:  fromFixed(width),
		Height: ascent + fromFixed(e.metrics.Descent),
		Ascent: ascent,
	}, nil
}

// Outline returns the contours of text with the pen at (x, baseline).
// Safe for concurrent use.
func (e *Entry) Outline(text string, x, baseline float64) (sfnt.Segments, error) {
	buf := e.buffer()
	defer e.bufs.Put(buf)

	origin := fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)}
	var out sfnt.Segments
	_, err := e.walk(buf, text, func(r rune, idx sfnt.GlyphIndex, pen fixed.Int26_6) error {
		segs, err := e.font.LoadGlyph(buf, idx, e.ppem, nil)
		if err != nil {
			return fmt.Errorf("fontcache: load glyph %q: %w", r, err)
		}
		at := fixed.Point26_6{X: origin.X + pen, Y: origin.Y}
		// segs aliases buf; copy while translating.
		for _, s := range segs {
			for i := range s.Args {
				s.Args[i] = s.Args[i].Add(at)
			}
			out = append(out, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// walk advances a pen across text, applying kerning, and calls visit (when
// non-nil) with each glyph and its pen offset. Measure and Outline share it,
// so a glyph that fails one fails the other. Runes missing from the font map
// to the notdef glyph and are not errors.
func (e *Entry) walk(buf *sfnt.Buffer, text string, visit func(r rune, idx sfnt.GlyphIndex, pen fixed.Int26_6) error) (fixed.Int26_6, error) {
	var pen fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	hasPrev := false
	for _, r := range text {
		idx, err := e.font.GlyphIndex(buf, r)
		if err != nil {
			return 0, fmt.Errorf("fontcache: glyph index %q: %w", r, err)
		}
		if hasPrev {
			if k, err := e.font.Kern(buf, prev, idx, e.ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		if visit != nil {
			if err := visit(r, idx, pen); err != nil {
				return 0, err
			}
		}
		adv, err := e.font.GlyphAdvance(buf, idx, e.ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("fontcache: glyph advance %q: %w", r, err)
		}
		pen += adv
		prev, hasPrev = idx, true
	}
	return pen, nil
}

// WithFace runs fn while holding the entry's face. font.Face
// implementations keep internal buffers and are not safe for concurrent use.
func (e *Entry) WithFace(fn func(face font.Face)) {
	e.faceMu.Lock()
	defer e.faceMu.Unlock()
	fn(e.face)
}

func (e *Entry) buffer() *sfnt.Buffer {
	return e.bufs.Get().(*sfnt.Buffer)
}

var _ pipeline.Glyphs = (*Entry)(nil)

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
