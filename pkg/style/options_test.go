package style

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()

	if opts.TextColor != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("TextColor = %+v, want white", opts.TextColor)
	}
	if opts.BackgroundColor != (RGB{}) {
		t.Errorf("BackgroundColor = %+v, want black", opts.BackgroundColor)
	}
	if opts.BackgroundAlpha != 120 {
		t.Errorf("BackgroundAlpha = %d, want 120", opts.BackgroundAlpha)
	}
	if opts.WithOutline {
		t.Error("WithOutline should be false by default")
	}
}

func TestBuildOptions_BlankColorFallsBackToDefault(t *testing.T) {
	alpha := uint8(200)

	tests := []struct {
		name string
		text string
		bg   string
	}{
		{name: "both blank", text: "", bg: ""},
		{name: "text blank", text: "", bg: "FF0000"},
		{name: "background blank", text: "00FF00", bg: ""},
		{name: "whitespace", text: "  ", bg: "FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := BuildOptions(tt.text, tt.bg, true, &alpha)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts != Default() {
				t.Errorf("expected defaults, got %+v", opts)
			}
		})
	}
}

func TestBuildOptions_Custom(t *testing.T) {
	alpha := uint8(200)

	opts, err := BuildOptions("00FF00", "FF0000", true, &alpha)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.TextColor != (RGB{G: 255}) {
		t.Errorf("TextColor = %+v, want green", opts.TextColor)
	}
	if opts.BackgroundColor != (RGB{R: 255}) {
		t.Errorf("BackgroundColor = %+v, want red", opts.BackgroundColor)
	}
	if opts.BackgroundAlpha != 200 {
		t.Errorf("BackgroundAlpha = %d, want 200", opts.BackgroundAlpha)
	}
	if !opts.WithOutline {
		t.Error("WithOutline should be true")
	}

	bg := opts.BackgroundNRGBA()
	if bg.R != 255 || bg.G != 0 || bg.B != 0 || bg.A != 200 {
		t.Errorf("BackgroundNRGBA() = %+v", bg)
	}
}

func TestBuildOptions_DefaultAlpha(t *testing.T) {
	opts, err := BuildOptions("#ffffff", "#000000", false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.BackgroundAlpha != DefaultBackgroundAlpha {
		t.Errorf("BackgroundAlpha = %d, want %d", opts.BackgroundAlpha, DefaultBackgroundAlpha)
	}
}

func TestBuildOptions_InvalidColor(t *testing.T) {
	if _, err := BuildOptions("12345", "000000", false, nil); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("text color: expected ErrInvalidColor, got %v", err)
	}
	if _, err := BuildOptions("ffffff", "zzzzzz", false, nil); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("background color: expected ErrInvalidColor, got %v", err)
	}
}
