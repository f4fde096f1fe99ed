// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/memedraw/pkg/ports"
)

// Sink saves debug output under baseDir, one subdirectory per run name. The
// name is usually the output path, mirrored with its extension so that
// out/a/cat.jpg and out/b/cat.png never share a directory:
//
//	<baseDir>/out/a/cat.jpg/captions.json
//	<baseDir>/out/a/cat.jpg/canvas.png
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveCaptionsJSON saves the fitted sizes and layouts.
func (s *Sink) SaveCaptionsJSON(name string, data []byte) error {
	dir, err := s.dir(name)
	if err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, "captions.json"), data)
}

// SaveCanvas saves the composited canvas as PNG.
func (s *Sink) SaveCanvas(name string, img image.Image) error {
	dir, err := s.dir(name)
	if err != nil {
		return err
	}
	data, err := s.codec.Encode(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode canvas: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, "canvas.png"), data)
}

func (s *Sink) dir(name string) (string, error) {
	dir := filepath.Join(s.baseDir, runName(name))
	if err := s.fs.MkdirAll(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// runName mirrors an output path or job name as a path relative to the base
// directory. The root and volume are dropped and ".." becomes "_", so the
// result never escapes the base.
func runName(name string) string {
	clean := filepath.Clean(name)
	clean = strings.TrimPrefix(clean, filepath.VolumeName(clean))

	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(clean), "/") {
		switch p {
		case "", ".":
			continue
		case "..":
			p = "_"
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return "meme"
	}
	return filepath.Join(parts...)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
