package fit

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/user/memedraw/pkg/adapters/logger"
	"github.com/user/memedraw/pkg/fontcache"
	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/style"
)

// linearGlyphs measures every rune as perRune*size pixels wide. Text
// containing bad fails to measure.
type linearGlyphs struct {
	size    float64
	perRune float64
	bad     rune
}

func (g linearGlyphs) Size() float64 { return g.size }
func (g linearGlyphs) OutlinePaint() style.Paint {
	return style.Paint{Color: style.OutlineColor, StrokeWidth: fontcache.StrokeWidthFor(g.size)}
}
func (g linearGlyphs) Measure(text string) (pipeline.MeasuredText, error) {
	if g.bad != 0 && strings.ContainsRune(text, g.bad) {
		return pipeline.MeasuredText{}, errBadGlyph
	}
	n := float64(len([]rune(text)))
	return pipeline.MeasuredText{Width: n * g.perRune * g.size, Height: g.size, Ascent: g.size * 0.8}, nil
}
func (g linearGlyphs) Outline(string, float64, float64) (sfnt.Segments, error) { return nil, nil }
func (g linearGlyphs) WithFace(func(font.Face))                              {}

// linearSource records every size looked up.
type linearSource struct {
	mu      sync.Mutex
	perRune float64
	bad     rune
	tried   []float64
	err     error
}

func (s *linearSource) Lookup(size float64) (pipeline.Glyphs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.tried = append(s.tried, size)
	return linearGlyphs{size: size, perRune: s.perRune, bad: s.bad}, nil
}

var errBadGlyph = errors.New("bad glyph")

func measure(t *testing.T, g pipeline.Glyphs, text string) pipeline.MeasuredText {
	t.Helper()
	m, err := g.Measure(text)
	if err != nil {
		t.Fatalf("Measure(%q) failed: %v", text, err)
	}
	return m
}

func TestDefaultBounds(t *testing.T) {
	b := DefaultBounds()
	if b.MinSize != 10 || b.MaxSize != 100 || b.Padding != 28 {
		t.Errorf("DefaultBounds() = %+v", b)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBounds_Validate(t *testing.T) {
	bad := []Bounds{
		{MinSize: 0, MaxSize: 10, Padding: 1},
		{MinSize: 20, MaxSize: 10, Padding: 1},
		{MinSize: 10, MaxSize: 20, Padding: -1},
	}
	for _, b := range bad {
		if err := b.Validate(); err == nil {
			t.Errorf("Validate(%+v): expected error", b)
		}
	}
}

func TestSolve_FitCorrectness(t *testing.T) {
	b := DefaultBounds()
	texts := []string{"A", "HELLO WORLD", "WHEN YOU SEE YOUR CODE IN PRODUCTION AND", ""}
	widths := []int{1, 50, 120, 300, 800, 1920, 5000}

	for _, text := range texts {
		for _, w := range widths {
			src := &linearSource{perRune: 0.6}
			res, err := Solve(src, text, w, b)
			if err != nil {
				t.Fatalf("Solve(%q, %d) failed: %v", text, w, err)
			}
			if res.Size < b.MinSize || res.Size > b.MaxSize {
				t.Errorf("Solve(%q, %d) size %v outside bounds", text, w, res.Size)
			}
			fits := res.Measured.Width+2*b.Padding <= float64(w)
			if !fits && res.Size != b.MinSize {
				t.Errorf("Solve(%q, %d) size %v does not fit and is not MinSize", text, w, res.Size)
			}
		}
	}
}

func TestSolve_Termination(t *testing.T) {
	b := DefaultBounds()
	src := &linearSource{perRune: 0.6}

	res, err := Solve(src, "HELLO WORLD", 800, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// The interval shrinks to at most half minus one per step.
	maxSteps := int(math.Ceil(math.Log2(b.MaxSize-b.MinSize+1))) + 1
	if res.Steps > maxSteps {
		t.Errorf("Steps = %d, want <= %d", res.Steps, maxSteps)
	}
	if res.Steps != len(src.tried) {
		t.Errorf("Steps = %d, tried %d", res.Steps, len(src.tried))
	}
}

func TestSolve_MeasurementBelongsToChosenSize(t *testing.T) {
	// Sized so the final try overshoots and is rejected.
	b := DefaultBounds()
	src := &linearSource{perRune: 0.6}

	res, err := Solve(src, "HELLO WORLD", 600, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	want := measure(t, linearGlyphs{size: res.Size, perRune: 0.6}, "HELLO WORLD")
	if res.Measured != want {
		t.Errorf("Measured = %+v, want measurement at chosen size %+v", res.Measured, want)
	}
	if res.Glyphs.Size() != res.Size {
		t.Errorf("Glyphs.Size() = %v, want %v", res.Glyphs.Size(), res.Size)
	}
}

func TestSolve_LargestFittingSize(t *testing.T) {
	b := Bounds{MinSize: 10, MaxSize: 100, Padding: 0}
	src := &linearSource{perRune: 1}

	res, err := Solve(src, "ABCD", 100, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Measured.Width > 100 {
		t.Errorf("chosen width %v exceeds 100", res.Measured.Width)
	}
	// Rejected sizes step down by one, so the answer lands within 2 of the
	// true threshold (25).
	if res.Size <= 23 {
		t.Errorf("size %v is too far below the threshold 25", res.Size)
	}
}

func TestSolve_FallbackToMinSize(t *testing.T) {
	b := DefaultBounds()
	src := &linearSource{perRune: 0.6}

	res, err := Solve(src, "THIS CAPTION IS MUCH TOO LONG FOR A TINY IMAGE", 40, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Size != b.MinSize {
		t.Errorf("Size = %v, want MinSize %v", res.Size, b.MinSize)
	}
	want := measure(t, linearGlyphs{size: b.MinSize, perRune: 0.6}, "THIS CAPTION IS MUCH TOO LONG FOR A TINY IMAGE")
	if res.Measured != want {
		t.Errorf("Measured = %+v, want %+v", res.Measured, want)
	}
}

func TestSolve_MaxSizeWhenEverythingFits(t *testing.T) {
	b := DefaultBounds()
	src := &linearSource{perRune: 0.01}

	res, err := Solve(src, "HI", 5000, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	// The search pushes low past high; the last accepted mid is within 1 of MaxSize.
	if res.Size < b.MaxSize-1 || res.Size > b.MaxSize {
		t.Errorf("Size = %v, want within 1 of %v", res.Size, b.MaxSize)
	}
}

func TestSolve_SourceError(t *testing.T) {
	wantErr := errors.New("boom")
	src := &linearSource{err: wantErr}

	_, err := Solve(src, "HELLO", 800, DefaultBounds())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

func TestSolve_MeasureError(t *testing.T) {
	src := &linearSource{perRune: 0.6, bad: '\u2603'}

	res, err := Solve(src, "HELLO \u2603", 800, DefaultBounds())
	if !errors.Is(err, errBadGlyph) {
		t.Fatalf("expected wrapped measure error, got %v", err)
	}
	if res.Glyphs != nil {
		t.Errorf("expected empty result on error, got %+v", res)
	}
	if len(src.tried) != 1 {
		t.Errorf("tried %v, want the search to stop at the first failure", src.tried)
	}
}

func TestSolve_RealTypeface(t *testing.T) {
	cache, err := fontcache.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}
	b := DefaultBounds()

	res, err := Solve(cache, "HELLO WORLD", 800, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Size < b.MinSize || res.Size > b.MaxSize {
		t.Errorf("size %v outside bounds", res.Size)
	}
	if res.Measured.Width+2*b.Padding > 800 {
		t.Errorf("width %v + padding exceeds 800", res.Measured.Width)
	}
	if cache.Len() != res.Steps && cache.Len() != res.Steps+1 {
		t.Errorf("cache holds %d entries after %d steps", cache.Len(), res.Steps)
	}
}

func TestSolve_UninitializedCache(t *testing.T) {
	var cache fontcache.Cache
	_, err := Solve(&cache, "HELLO", 800, DefaultBounds())
	if !errors.Is(err, fontcache.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestStage_Execute(t *testing.T) {
	src := &linearSource{perRune: 0.6}
	stage := NewStage(src, DefaultBounds(), logger.NewNoop())

	res, err := stage.Execute(context.Background(), pipeline.FitInput{Text: "HELLO", MaxWidth: 400})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Glyphs == nil {
		t.Error("expected glyphs in result")
	}
}
