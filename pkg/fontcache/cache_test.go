package fontcache

import (
	"errors"
	"sync"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/user/memedraw/pkg/style"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}
	return c
}

func TestNew_InvalidTypeface(t *testing.T) {
	_, err := New([]byte("not a font"))
	if !errors.Is(err, ErrFontLoad) {
		t.Fatalf("expected ErrFontLoad, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/impact.ttf")
	if !errors.Is(err, ErrFontLoad) {
		t.Fatalf("expected ErrFontLoad, got %v", err)
	}
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if _, err := c.GetOrCreate(24); err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
}

func TestCache_ZeroValueFailsFast(t *testing.T) {
	var c Cache
	if _, err := c.GetOrCreate(24); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetOrCreate on zero cache: expected ErrNotInitialized, got %v", err)
	}
	if _, err := c.Lookup(24); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Lookup on zero cache: expected ErrNotInitialized, got %v", err)
	}

	var nilCache *Cache
	if _, err := nilCache.GetOrCreate(24); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("GetOrCreate on nil cache: expected ErrNotInitialized, got %v", err)
	}
}

func TestCache_InvalidSize(t *testing.T) {
	c := newTestCache(t)
	for _, size := range []float64{0, -3} {
		if _, err := c.GetOrCreate(size); err == nil {
			t.Errorf("GetOrCreate(%v): expected error", size)
		}
	}
}

func TestCache_SameSizeSameEntry(t *testing.T) {
	c := newTestCache(t)

	a, err := c.GetOrCreate(42.5)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	b, err := c.GetOrCreate(42.5)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	if a != b {
		t.Error("expected identical entries for the same size")
	}
	if c.Constructed() != 1 {
		t.Errorf("Constructed() = %d, want 1", c.Constructed())
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_ConcurrentFirstAccess(t *testing.T) {
	c := newTestCache(t)

	const goroutines = 64
	entries := make([]*Entry, goroutines)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			e, err := c.GetOrCreate(55)
			if err != nil {
				t.Errorf("GetOrCreate failed: %v", err)
				return
			}
			entries[i] = e
		}(i)
	}
	close(start)
	wg.Wait()

	for i, e := range entries {
		if e != entries[0] {
			t.Fatalf("entry %d differs from entry 0", i)
		}
	}
	if c.Constructed() != 1 {
		t.Errorf("Constructed() = %d, want exactly 1", c.Constructed())
	}
}

func TestCache_DistinctSizesGrow(t *testing.T) {
	c := newTestCache(t)
	sizes := []float64{10, 32.75, 55, 77.5, 100}
	for _, s := range sizes {
		if _, err := c.GetOrCreate(s); err != nil {
			t.Fatalf("GetOrCreate(%v) failed: %v", s, err)
		}
	}
	if c.Len() != len(sizes) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(sizes))
	}
}

func TestEntry_OutlinePaint(t *testing.T) {
	c := newTestCache(t)

	tests := []struct {
		size float64
		want float64
	}{
		{size: 10, want: 2},
		{size: 24, want: 2},
		{size: 36, want: 3},
		{size: 60, want: 5},
	}
	for _, tt := range tests {
		e, err := c.GetOrCreate(tt.size)
		if err != nil {
			t.Fatalf("GetOrCreate(%v) failed: %v", tt.size, err)
		}
		p := e.OutlinePaint()
		if p.StrokeWidth != tt.want {
			t.Errorf("stroke width at %v = %v, want %v", tt.size, p.StrokeWidth, tt.want)
		}
		if p.Color != style.OutlineColor {
			t.Errorf("outline color at %v = %v, want %v", tt.size, p.Color, style.OutlineColor)
		}
	}
}

func TestEntry_MeasureMonotonic(t *testing.T) {
	c := newTestCache(t)

	prev := 0.0
	for size := 10.0; size <= 100; size += 7.5 {
		e, err := c.GetOrCreate(size)
		if err != nil {
			t.Fatalf("GetOrCreate(%v) failed: %v", size, err)
		}
		m, err := e.Measure("HELLO WORLD")
		if err != nil {
			t.Fatalf("Measure at %v failed: %v", size, err)
		}
		if m.Width < prev {
			t.Errorf("width decreased at size %v: %v < %v", size, m.Width, prev)
		}
		if m.Height <= 0 || m.Ascent <= 0 || m.Ascent > m.Height {
			t.Errorf("bad vertical metrics at %v: %+v", size, m)
		}
		prev = m.Width
	}
}

func TestEntry_MeasureEmpty(t *testing.T) {
	c := newTestCache(t)
	e, _ := c.GetOrCreate(30)
	m, err := e.Measure("")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if m.Width != 0 {
		t.Errorf("Measure(\"\").Width = %v, want 0", m.Width)
	}
}

func TestEntry_OutlineTranslated(t *testing.T) {
	c := newTestCache(t)
	e, _ := c.GetOrCreate(40)

	segs, err := e.Outline("H", 100, 200)
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(segs) == 0 {
		t.Fatal("expected segments for 'H'")
	}
	if segs[0].Op != sfnt.SegmentOpMoveTo {
		t.Errorf("first op = %v, want MoveTo", segs[0].Op)
	}

	m, err := e.Measure("H")
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	for _, s := range segs {
		p := s.Args[0]
		x := float64(p.X) / 64
		y := float64(p.Y) / 64
		if x < 100-1 || x > 100+m.Width+1 {
			t.Errorf("x %v outside pen range [100, %v]", x, 100+m.Width)
		}
		if y > 200+1 || y < 200-m.Ascent-1 {
			t.Errorf("y %v outside glyph box above baseline 200", y)
		}
	}
}

func TestEntry_MeasureMatchesOutline(t *testing.T) {
	c := newTestCache(t)
	e, _ := c.GetOrCreate(48)

	tests := []struct {
		name string
		text string
	}{
		{"ascii", "HELLO"},
		{"kerned pair", "AV"},
		{"rune missing from font", "A\U000F0000B"},
		{"cjk", "猫"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, merr := e.Measure(tt.text)
			segs, oerr := e.Outline(tt.text, 0, 100)
			if (merr == nil) != (oerr == nil) {
				t.Fatalf("Measure err = %v, Outline err = %v; want the same outcome", merr, oerr)
			}
			if merr != nil {
				return
			}
			if m.Width <= 0 {
				t.Errorf("Width = %v, want > 0", m.Width)
			}
			for _, s := range segs {
				// allow side bearings to overhang the advance slightly
				if x := float64(s.Args[0].X) / 64; x > m.Width+e.Size()/10 {
					t.Errorf("outline x %v beyond measured width %v", x, m.Width)
				}
			}
		})
	}
}

func TestEntry_WithFace(t *testing.T) {
	c := newTestCache(t)
	e, _ := c.GetOrCreate(20)

	called := false
	e.WithFace(func(face font.Face) {
		called = true
		if face.Metrics().Height <= 0 {
			t.Error("expected positive line height")
		}
	})
	if !called {
		t.Error("WithFace did not invoke fn")
	}
}
