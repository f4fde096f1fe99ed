package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/memedraw/pkg/pipeline"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

// RendererCall records one call made to Renderer.
type RendererCall struct {
	Method string // "FillBand" or "DrawText"
	Band   pipeline.Rect
	Color  color.NRGBA
	Text   pipeline.PlacedText
	Style  style.Options
}

// Renderer is a mock implementation of ports.CaptionRenderer that records
// its calls and draws nothing.
type Renderer struct {
	mu    sync.Mutex
	calls []RendererCall

	DrawTextFunc func(dst *image.RGBA, text pipeline.PlacedText, opts style.Options) error
}

// NewRenderer creates a new mock Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (m *Renderer) Name() string {
	return "mock"
}

func (m *Renderer) FillBand(dst *image.RGBA, band pipeline.Rect, c color.NRGBA) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, RendererCall{Method: "FillBand", Band: band, Color: c})
}

func (m *Renderer) DrawText(dst *image.RGBA, text pipeline.PlacedText, opts style.Options) error {
	m.mu.Lock()
	m.calls = append(m.calls, RendererCall{Method: "DrawText", Text: text, Style: opts})
	m.mu.Unlock()
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(dst, text, opts)
	}
	return nil
}

// Calls returns a copy of the recorded calls (for test verification).
func (m *Renderer) Calls() []RendererCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RendererCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Count returns how many times method was called.
func (m *Renderer) Count(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

var _ ports.CaptionRenderer = (*Renderer)(nil)
