package memedraw

import (
	"errors"
	"testing"

	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/style"
)

func TestNewRequestBuilder_Defaults(t *testing.T) {
	req := NewRequestBuilder().Build()

	if req.Format != ports.FormatJPEG {
		t.Errorf("expected JPEG, got %v", req.Format)
	}
	if req.Quality != DefaultQuality {
		t.Errorf("expected quality %d, got %d", DefaultQuality, req.Quality)
	}

	opts, err := req.Style()
	if err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	if opts != style.Default() {
		t.Errorf("expected default style, got %+v", opts)
	}
}

func TestRequestBuilder_Chain(t *testing.T) {
	req := NewRequestBuilder().
		WithTopText("one does not simply").
		WithBottomText("walk into mordor").
		WithTextColor("#ffff00").
		WithBackgroundColor("0000ff").
		WithBackgroundOpacity(200).
		WithOutline(true).
		WithQuality(75).
		WithFormat(ports.FormatPNG).
		Build()

	cfg, err := req.ToOrchestratorConfig("in.jpg", "out.png")
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}

	if cfg.InputPath != "in.jpg" || cfg.OutputPath != "out.png" {
		t.Errorf("unexpected paths %q %q", cfg.InputPath, cfg.OutputPath)
	}
	if cfg.TopText != "one does not simply" || cfg.BottomText != "walk into mordor" {
		t.Errorf("unexpected captions %q / %q", cfg.TopText, cfg.BottomText)
	}
	want := style.Options{
		TextColor:       style.RGB{R: 255, G: 255},
		BackgroundColor: style.RGB{B: 255},
		BackgroundAlpha: 200,
		WithOutline:     true,
	}
	if cfg.Style != want {
		t.Errorf("expected style %+v, got %+v", want, cfg.Style)
	}
	if cfg.Format != ports.FormatPNG || cfg.Quality != 75 {
		t.Errorf("unexpected encoding %v q%d", cfg.Format, cfg.Quality)
	}
}

func TestRequestBuilder_QualityConstraint(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultQuality},
		{-5, DefaultQuality},
		{101, DefaultQuality},
		{1, 1},
		{100, 100},
	}
	for _, tt := range tests {
		if got := NewRequestBuilder().WithQuality(tt.in).Build().Quality; got != tt.want {
			t.Errorf("WithQuality(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestRequest_BlankColorUsesDefaults(t *testing.T) {
	// outline and opacity are ignored when either color is missing
	req := NewRequestBuilder().
		WithTextColor("#ff0000").
		WithBackgroundOpacity(10).
		WithOutline(true).
		Build()

	opts, err := req.Style()
	if err != nil {
		t.Fatalf("Style failed: %v", err)
	}
	if opts != style.Default() {
		t.Errorf("expected default style, got %+v", opts)
	}
}

func TestRequest_InvalidColor(t *testing.T) {
	req := NewRequestBuilder().WithTextColor("#zzzzzz").WithBackgroundColor("#000000").Build()
	if _, err := req.ToOrchestratorConfig("a", "b"); !errors.Is(err, style.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "gg"},
		{"gg", "gg"},
		{"GG", "gg"},
		{"raster", "raster"},
		{" raster ", "raster"},
	}
	for _, tt := range tests {
		r, err := NewRenderer(tt.name)
		if err != nil {
			t.Fatalf("NewRenderer(%q) failed: %v", tt.name, err)
		}
		if r.Name() != tt.want {
			t.Errorf("NewRenderer(%q).Name() = %q, want %q", tt.name, r.Name(), tt.want)
		}
	}

	if _, err := NewRenderer("skia"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}
