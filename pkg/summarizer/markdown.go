package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Translator maps a label to its display text.
type Translator func(key string) string

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the label translator.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.t = t
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(v string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = v
	}
}

// MarkdownFormatter renders a Summary as Markdown.
type MarkdownFormatter struct {
	t       Translator
	version string
}

// NewMarkdownFormatter creates a formatter. Labels are English unless a
// translator is given.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		t: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	if len(s.Batch) > 0 {
		f.writeBatch(&sb, s)
	} else {
		f.writeRun(&sb, s)
	}

	sb.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", f.t("Generated at"), s.GeneratedAt.Format(time.RFC3339))
	if f.version != "" {
		footer += fmt.Sprintf(" (memedraw %s)", f.version)
	}
	sb.WriteString(footer + "\n")

	return sb.String()
}

func (f *MarkdownFormatter) writeRun(sb *strings.Builder, s *Summary) {
	fmt.Fprintf(sb, "# %s\n\n", f.t("Meme Summary"))

	// Image
	fmt.Fprintf(sb, "## %s\n\n", f.t("Image"))
	fmt.Fprintf(sb, "| %s | %s |\n|---|---|\n", f.t("Item"), f.t("Value"))
	f.row(sb, "Input", s.Input.Path)
	f.row(sb, "Input Format", s.Input.Format)
	f.row(sb, "Size", fmt.Sprintf("%dx%d", s.Input.Width, s.Input.Height))
	f.row(sb, "Output", s.Output.Path)
	f.row(sb, "Output Format", outputFormat(s.Output))
	f.row(sb, "File Size", formatBytes(s.Output.FileSize))
	sb.WriteString("\n")

	// Captions
	fmt.Fprintf(sb, "## %s\n\n", f.t("Captions"))
	if len(s.Captions) == 0 {
		fmt.Fprintf(sb, "%s\n\n", f.t("No captions drawn"))
	} else {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s |\n|---|---|---|---|---|\n",
			f.t("Placement"), f.t("Text"), f.t("Font Size"), f.t("Text Box"), f.t("Band"))
		for _, c := range s.Captions {
			band := fmt.Sprintf("y=%.1f h=%.1f", c.BandY, c.BandHeight)
			if c.Degenerate {
				band += " (" + f.t("overflows image") + ")"
			}
			fmt.Fprintf(sb, "| %s | %s | %.2f px (%d %s) | %.1fx%.1f | %s |\n",
				f.t(c.Placement), escape(c.Text), c.FontSize, c.Steps, f.t("steps"),
				c.TextWidth, c.TextHeight, band)
		}
		sb.WriteString("\n")
	}

	// Settings
	fmt.Fprintf(sb, "## %s\n\n", f.t("Settings"))
	fmt.Fprintf(sb, "| %s | %s |\n|---|---|\n", f.t("Item"), f.t("Value"))
	f.row(sb, "Renderer", s.Settings.Backend)
	f.row(sb, "Text Color", s.Settings.TextColor)
	f.row(sb, "Background", fmt.Sprintf("%s @ %d", s.Settings.BackgroundColor, s.Settings.BackgroundOpacity))
	f.row(sb, "Outline", f.yesNo(s.Settings.Outline))
	f.row(sb, "Font Size Range", fmt.Sprintf("%g-%g px", s.Settings.MinFontSize, s.Settings.MaxFontSize))
	f.row(sb, "Padding", fmt.Sprintf("%g px", s.Settings.Padding))
	sb.WriteString("\n")

	// Timing
	fmt.Fprintf(sb, "## %s\n\n", f.t("Timing"))
	fmt.Fprintf(sb, "| %s | %s |\n|---|---|\n", f.t("Stage"), f.t("Duration"))
	f.row(sb, "Decode", formatDuration(s.Timing.Decode))
	f.row(sb, "Draw", formatDuration(s.Timing.Draw))
	f.row(sb, "Encode", formatDuration(s.Timing.Encode))
	if s.Timing.Total > 0 {
		f.row(sb, "Total", formatDuration(s.Timing.Total))
	}
	sb.WriteString("\n")
}

func (f *MarkdownFormatter) writeBatch(sb *strings.Builder, s *Summary) {
	fmt.Fprintf(sb, "# %s\n\n", f.t("Batch Summary"))

	ok, failed := 0, 0
	for _, e := range s.Batch {
		if e.Error == "" {
			ok++
		} else {
			failed++
		}
	}
	fmt.Fprintf(sb, "%s: %d, %s: %d, %s: %s\n\n",
		f.t("Succeeded"), ok, f.t("Failed"), failed, f.t("Renderer"), s.Settings.Backend)

	fmt.Fprintf(sb, "| # | %s | %s | %s | %s | %s |\n|---|---|---|---|---|---|\n",
		f.t("Input"), f.t("Output"), f.t("Captions"), f.t("File Size"), f.t("Result"))
	for i, e := range s.Batch {
		result := formatDuration(e.Duration)
		size := formatBytes(e.FileSize)
		if e.Error != "" {
			result = f.t("Failed") + ": " + escape(e.Error)
			size = "-"
		}
		fmt.Fprintf(sb, "| %d | %s | %s | %d | %s | %s |\n",
			i+1, escape(e.Input), escape(e.Output), e.Captions, size, result)
	}
	sb.WriteString("\n")
}

func (f *MarkdownFormatter) row(sb *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(sb, "| %s | %s |\n", f.t(label), value)
}

func (f *MarkdownFormatter) yesNo(v bool) string {
	if v {
		return f.t("Yes")
	}
	return f.t("No")
}

func outputFormat(o OutputInfo) string {
	if o.Format == "jpeg" && o.Quality > 0 {
		return fmt.Sprintf("jpeg (q%d)", o.Quality)
	}
	return o.Format
}

// escape keeps table cells intact.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1f ms", float64(d)/float64(time.Millisecond))
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

var _ Formatter = (*MarkdownFormatter)(nil)
