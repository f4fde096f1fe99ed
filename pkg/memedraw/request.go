// Package memedraw provides a high-level API for drawing meme captions.
package memedraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user/memedraw/pkg/adapters/ggrenderer"
	"github.com/user/memedraw/pkg/adapters/rasterrenderer"
	"github.com/user/memedraw/pkg/orchestrator"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

// DefaultQuality is the JPEG quality of the output.
const DefaultQuality = 90

// DefaultBackend is the renderer used when none is named.
const DefaultBackend = ggrenderer.Name

// ErrUnknownBackend is returned for renderer names that are not built in.
var ErrUnknownBackend = errors.New("unknown renderer backend")

// Backends lists the built-in renderer names.
func Backends() []string {
	return []string{ggrenderer.Name, rasterrenderer.Name}
}

// NewRenderer returns the renderer registered under name. An empty name
// selects DefaultBackend.
func NewRenderer(name string) (ports.CaptionRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ggrenderer.Name:
		return ggrenderer.New(), nil
	case rasterrenderer.Name:
		return rasterrenderer.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
}

// Request describes one meme: the two captions and how to paint them.
type Request struct {
	TopText    string
	BottomText string

	// Style. Blank colors select the default style as a whole.
	TextColorHex       string
	BackgroundColorHex string
	BackgroundOpacity  *uint8 // nil = style.DefaultBackgroundAlpha
	WithOutline        bool

	// Output
	Format  ports.ImageFormat
	Quality int
}

// RequestBuilder provides a fluent interface for building Request.
type RequestBuilder struct {
	req Request
}

// NewRequestBuilder creates a builder with JPEG output at DefaultQuality.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		req: Request{
			Format:  ports.FormatJPEG,
			Quality: DefaultQuality,
		},
	}
}

// Build returns the final Request, applying constraints.
func (b *RequestBuilder) Build() Request {
	req := b.req

	// Quality outside 1..100 falls back to the default
	if req.Quality < 1 || req.Quality > 100 {
		req.Quality = DefaultQuality
	}

	return req
}

// WithTopText sets the caption along the top edge.
func (b *RequestBuilder) WithTopText(text string) *RequestBuilder {
	b.req.TopText = text
	return b
}

// WithBottomText sets the caption along the bottom edge.
func (b *RequestBuilder) WithBottomText(text string) *RequestBuilder {
	b.req.BottomText = text
	return b
}

// WithTextColor sets the text color as hex, e.g. "#ffffff".
func (b *RequestBuilder) WithTextColor(hex string) *RequestBuilder {
	b.req.TextColorHex = hex
	return b
}

// WithBackgroundColor sets the band color as hex.
func (b *RequestBuilder) WithBackgroundColor(hex string) *RequestBuilder {
	b.req.BackgroundColorHex = hex
	return b
}

// WithBackgroundOpacity sets the band alpha (0 transparent, 255 opaque).
func (b *RequestBuilder) WithBackgroundOpacity(alpha uint8) *RequestBuilder {
	b.req.BackgroundOpacity = &alpha
	return b
}

// WithOutline enables the black outline around glyphs.
func (b *RequestBuilder) WithOutline(outline bool) *RequestBuilder {
	b.req.WithOutline = outline
	return b
}

// WithQuality sets the JPEG quality (1-100).
func (b *RequestBuilder) WithQuality(quality int) *RequestBuilder {
	b.req.Quality = quality
	return b
}

// WithFormat sets the output format.
func (b *RequestBuilder) WithFormat(format ports.ImageFormat) *RequestBuilder {
	b.req.Format = format
	return b
}

// Style resolves the request's colors into paint options.
func (r Request) Style() (style.Options, error) {
	return style.BuildOptions(r.TextColorHex, r.BackgroundColorHex, r.WithOutline, r.BackgroundOpacity)
}

// ToOrchestratorConfig converts Request to orchestrator.Config.
func (r Request) ToOrchestratorConfig(inputPath, outputPath string) (orchestrator.Config, error) {
	opts, err := r.Style()
	if err != nil {
		return orchestrator.Config{}, err
	}
	return orchestrator.Config{
		InputPath:  inputPath,
		OutputPath: outputPath,

		TopText:    r.TopText,
		BottomText: r.BottomText,
		Style:      opts,

		Format:  r.Format,
		Quality: r.Quality,
	}, nil
}
