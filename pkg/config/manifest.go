package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/user/memedraw/pkg/orchestrator"
	"github.com/user/memedraw/pkg/ports"
)

// ErrEmptyManifest is returned for a manifest without jobs.
var ErrEmptyManifest = errors.New("manifest has no jobs")

// Manifest lists memes to produce in one batch run.
//
//	jobs:
//	  - input: cat.jpg
//	    output: out/cat.jpg
//	    top: when you realize
//	    bottom: it's monday
//	    style:
//	      text_color: "#ffff00"
//	      background_color: "#000000"
//	      outline: true
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one meme in a manifest. Relative paths are resolved against the
// manifest's directory. A job style replaces the configured default style.
// Without an explicit format the output extension decides.
type Job struct {
	Input   string       `yaml:"input"`
	Output  string       `yaml:"output"`
	Top     string       `yaml:"top"`
	Bottom  string       `yaml:"bottom"`
	Style   *StyleConfig `yaml:"style"`
	Format  string       `yaml:"format"`
	Quality int          `yaml:"quality"`
}

// LoadManifest reads and validates a batch manifest.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(m.Jobs) == 0 {
		return m, fmt.Errorf("%s: %w", path, ErrEmptyManifest)
	}

	base := filepath.Dir(path)
	for i := range m.Jobs {
		job := &m.Jobs[i]
		if job.Input == "" || job.Output == "" {
			return m, fmt.Errorf("%s: job %d: input and output are required", path, i+1)
		}
		job.Input = resolve(base, job.Input)
		job.Output = resolve(base, job.Output)
	}
	return m, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// OrchestratorConfigs turns every job into a pipeline config, filling gaps
// from c.
func (m Manifest) OrchestratorConfigs(c Config) ([]orchestrator.Config, error) {
	out := make([]orchestrator.Config, 0, len(m.Jobs))
	for i, job := range m.Jobs {
		cfg, err := job.orchestratorConfig(c)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

func (j Job) orchestratorConfig(c Config) (orchestrator.Config, error) {
	if j.Style != nil {
		c.Style = *j.Style
	}
	if j.Format != "" {
		c.Format = j.Format
	}
	if j.Quality != 0 {
		c.Quality = j.Quality
	}

	b, err := c.RequestBuilder()
	if err != nil {
		return orchestrator.Config{}, err
	}
	if j.Format == "" {
		if f, ok := ports.FormatFromPath(j.Output); ok {
			b.WithFormat(f)
		}
	}

	cfg, err := b.WithTopText(j.Top).WithBottomText(j.Bottom).Build().ToOrchestratorConfig(j.Input, j.Output)
	if err != nil {
		return cfg, err
	}
	cfg.Backend = c.Backend
	return cfg, nil
}
