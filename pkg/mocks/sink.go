package mocks

import (
	"image"
	"sync"

	"github.com/user/memedraw/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	CaptionsJSON map[string][]byte
	Canvases     map[string]image.Image

	// Err, when set, is returned by every save and nothing is stored.
	Err error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:      enabled,
		CaptionsJSON: make(map[string][]byte),
		Canvases:     make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveCaptionsJSON(name string, data []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CaptionsJSON[name] = data
	return nil
}

func (m *DebugSink) SaveCanvas(name string, img image.Image) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Canvases[name] = img
	return nil
}

// Captions returns the saved JSON for name (for test verification).
func (m *DebugSink) Captions(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.CaptionsJSON[name]
	return data, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)
