// Package summarizer provides summary generation for meme runs.
package summarizer

import "time"

// Summary contains all data collected during one run or batch.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source image
	Input InputInfo

	// Captions in draw order
	Captions []CaptionInfo

	// Rendering settings
	Settings Settings

	// Encoded output
	Output OutputInfo

	// Stage timings
	Timing TimingInfo

	// Batch entries; empty for single runs
	Batch []BatchEntry
}

// InputInfo describes the decoded source image.
type InputInfo struct {
	Path   string
	Format string
	Width  int
	Height int
}

// CaptionInfo describes one drawn caption.
type CaptionInfo struct {
	Placement  string
	Text       string
	FontSize   float64
	Steps      int
	TextWidth  float64
	TextHeight float64
	BandY      float64
	BandHeight float64
	Degenerate bool
}

// Settings contains the rendering configuration.
type Settings struct {
	Backend           string
	TextColor         string
	BackgroundColor   string
	BackgroundOpacity uint8
	Outline           bool

	MinFontSize float64
	MaxFontSize float64
	Padding     float64
}

// OutputInfo contains information about the output image.
type OutputInfo struct {
	Path     string
	Format   string
	Quality  int
	FileSize int64
}

// TimingInfo contains stage durations.
type TimingInfo struct {
	Decode time.Duration
	Draw   time.Duration
	Encode time.Duration
	Total  time.Duration
}

// BatchEntry is the outcome of one batch job.
type BatchEntry struct {
	Input    string
	Output   string
	Captions int
	FileSize int64
	Duration time.Duration
	Error    string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets source image information.
func (b *Builder) WithInput(path, format string, width, height int) *Builder {
	b.summary.Input = InputInfo{
		Path:   path,
		Format: format,
		Width:  width,
		Height: height,
	}
	return b
}

// AddCaption appends a drawn caption.
func (b *Builder) AddCaption(c CaptionInfo) *Builder {
	b.summary.Captions = append(b.summary.Captions, c)
	return b
}

// WithSettings sets rendering settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output image information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithTiming sets stage durations.
func (b *Builder) WithTiming(decode, draw, encode, total time.Duration) *Builder {
	b.summary.Timing = TimingInfo{
		Decode: decode,
		Draw:   draw,
		Encode: encode,
		Total:  total,
	}
	return b
}

// AddBatchEntry appends a batch job outcome.
func (b *Builder) AddBatchEntry(e BatchEntry) *Builder {
	b.summary.Batch = append(b.summary.Batch, e)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
