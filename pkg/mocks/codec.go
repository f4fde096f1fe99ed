package mocks

import (
	"image"
	"sync"

	"github.com/user/memedraw/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec.
// By default Decode returns a blank 100x100 "png" image and Encode returns
// a short fixed payload.
type ImageCodec struct {
	mu      sync.Mutex
	encoded []EncodeCall

	DecodeFunc func(data []byte) (image.Image, string, error)
	EncodeFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

// EncodeCall records the arguments of one Encode call.
type EncodeCall struct {
	Image   image.Image
	Format  ports.ImageFormat
	Quality int
}

// NewImageCodec creates a new mock ImageCodec.
func NewImageCodec() *ImageCodec {
	return &ImageCodec{}
}

func (m *ImageCodec) Decode(data []byte) (image.Image, string, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), "png", nil
}

func (m *ImageCodec) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.encoded = append(m.encoded, EncodeCall{Image: img, Format: format, Quality: quality})
	m.mu.Unlock()
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

// EncodeCalls returns the recorded Encode calls (for test verification).
func (m *ImageCodec) EncodeCalls() []EncodeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EncodeCall, len(m.encoded))
	copy(out, m.encoded)
	return out
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
