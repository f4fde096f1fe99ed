// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/memedraw/pkg/memedraw"
	"github.com/user/memedraw/pkg/ports"
	"github.com/user/memedraw/pkg/stages/fit"
	"github.com/user/memedraw/pkg/style"
)

// Config represents the full configuration for memedraw.
type Config struct {
	// Rendering
	Backend  string `yaml:"backend"`
	FontPath string `yaml:"font_path"`

	// Font fitting
	MinFontSize float64 `yaml:"min_font_size"`
	MaxFontSize float64 `yaml:"max_font_size"`
	Padding     float64 `yaml:"padding"`

	// Default caption style
	Style StyleConfig `yaml:"style"`

	// Encoding
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`

	// Batch
	Workers int `yaml:"workers"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// StyleConfig represents caption styling options.
type StyleConfig struct {
	TextColor         string `yaml:"text_color"`
	BackgroundColor   string `yaml:"background_color"`
	BackgroundOpacity *uint8 `yaml:"background_opacity"`
	Outline           bool   `yaml:"outline"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	b := fit.DefaultBounds()
	return Config{
		Backend: memedraw.DefaultBackend,

		MinFontSize: b.MinSize,
		MaxFontSize: b.MaxSize,
		Padding:     b.Padding,

		Format:  "jpeg",
		Quality: memedraw.DefaultQuality,

		Workers: 4,

		LogLevel: "info",

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail deep in the pipeline.
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return err
	}
	if _, err := ports.ParseImageFormat(c.Format); err != nil {
		return err
	}
	if _, err := memedraw.NewRenderer(c.Backend); err != nil {
		return err
	}
	if !ports.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	for _, hex := range []string{c.Style.TextColor, c.Style.BackgroundColor} {
		if strings.TrimSpace(hex) == "" {
			continue
		}
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// Bounds returns the font-fit search bounds.
func (c Config) Bounds() fit.Bounds {
	return fit.Bounds{
		MinSize: c.MinFontSize,
		MaxSize: c.MaxFontSize,
		Padding: c.Padding,
	}
}

// ParseColor parses a hex color string such as "#ff8800".
func ParseColor(hex string) (style.RGB, error) {
	return style.HexToRGB(strings.TrimSpace(hex))
}

// RequestBuilder returns a builder preloaded with the configured style and
// encoding.
func (c Config) RequestBuilder() (*memedraw.RequestBuilder, error) {
	format, err := ports.ParseImageFormat(c.Format)
	if err != nil {
		return nil, err
	}
	b := memedraw.NewRequestBuilder().
		WithTextColor(c.Style.TextColor).
		WithBackgroundColor(c.Style.BackgroundColor).
		WithOutline(c.Style.Outline).
		WithFormat(format).
		WithQuality(c.Quality)
	if c.Style.BackgroundOpacity != nil {
		b.WithBackgroundOpacity(*c.Style.BackgroundOpacity)
	}
	return b, nil
}

// DrawerOptions returns the memedraw options for this configuration.
// Logger, sink and filesystem are left for the caller to set.
func (c Config) DrawerOptions() memedraw.Options {
	return memedraw.Options{
		Backend:  c.Backend,
		FontPath: c.FontPath,
		Bounds:   c.Bounds(),
	}
}
