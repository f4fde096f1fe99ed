package pipeline

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/user/memedraw/pkg/style"
)

// =============================================================================
// Common Types
// =============================================================================

// Placement selects which edge of the image a caption is attached to.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementBottom
)

// String returns the lowercase placement name.
func (p Placement) String() string {
	switch p {
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MarshalText encodes the placement by name.
func (p Placement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Caption is one line of text to overlay. Empty text means no caption.
type Caption struct {
	Text      string
	Placement Placement
}

// Rect is a rectangle in image pixels. Coordinates are real-valued because
// they derive from font metrics.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Right returns X + Width.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Point is a position in image pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MeasuredText is the box of a string at one font size.
type MeasuredText struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Ascent is the distance from the top of the box to the baseline.
	Ascent float64 `json:"ascent"`
}

// Glyphs measures and outlines text at a single font size.
// Implementations must be safe for concurrent use.
type Glyphs interface {
	// Size returns the font size in pixels.
	Size() float64

	// OutlinePaint returns the stroke drawn under the fill when outlining.
	OutlinePaint() style.Paint

	// Measure returns the advance width and line box of text. It fails on
	// exactly the text that Outline fails on.
	Measure(text string) (MeasuredText, error)

	// Outline returns the glyph contours of text with the pen starting at
	// (x, baseline), in image coordinates (y grows downwards).
	Outline(text string, x, baseline float64) (sfnt.Segments, error)

	// WithFace runs fn with exclusive access to a font.Face of this size.
	WithFace(fn func(face font.Face))
}

// =============================================================================
// Fit Stage Types
// =============================================================================

// FitInput contains parameters for the font-fit search.
type FitInput struct {
	Text     string
	MaxWidth int
}

// FitResult contains the chosen size and its own measurement.
type FitResult struct {
	Size     float64
	Measured MeasuredText
	Glyphs   Glyphs
	Steps    int // number of sizes the search tried
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for band and anchor placement.
type LayoutInput struct {
	Measured    MeasuredText
	ImageWidth  int
	ImageHeight int
	Placement   Placement
	Padding     float64
}

// LayoutResult contains the band rectangle and the text anchor.
type LayoutResult struct {
	Band Rect `json:"band"`

	// Anchor is the top-left corner of the text box. Renderers put the
	// baseline at Anchor.Y + MeasuredText.Ascent.
	Anchor Point `json:"anchor"`

	// Degenerate reports a band taller than the image. Rendering still
	// proceeds; it is advisory only.
	Degenerate bool `json:"degenerate"`
}

// =============================================================================
// Caption Stage Types
// =============================================================================

// PlacedText is a caption ready to be drawn: its display text, glyph source,
// measurement and layout.
type PlacedText struct {
	Text     string
	Glyphs   Glyphs
	Measured MeasuredText
	Layout   LayoutResult
}

// Baseline returns the pen origin for the first glyph.
func (p PlacedText) Baseline() Point {
	return Point{
		X: p.Layout.Anchor.X,
		Y: p.Layout.Anchor.Y + p.Measured.Ascent,
	}
}

// CaptionInput contains the canvas and captions to composite. The canvas
// must have its origin at (0, 0); NewCanvas guarantees that.
type CaptionInput struct {
	Canvas   *image.RGBA
	Captions []Caption
	Style    style.Options
}

// PlacedCaption records what was drawn for one caption.
type PlacedCaption struct {
	Placement Placement    `json:"placement"`
	Text      string       `json:"text"`
	FontSize  float64      `json:"font_size"`
	Steps     int          `json:"steps"`
	Measured  MeasuredText `json:"measured"`
	Layout    LayoutResult `json:"layout"`
}

// CaptionResult lists the captions that were drawn, in draw order.
type CaptionResult struct {
	Placed []PlacedCaption
}
