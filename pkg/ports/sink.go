package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveCaptionsJSON saves the fitted sizes and layouts as JSON.
	SaveCaptionsJSON(name string, data []byte) error

	// SaveCanvas saves the composited canvas before final encoding.
	SaveCanvas(name string, img image.Image) error
}
