package highlight

import "strings"

// Color is an optional 24-bit foreground color. The zero value means
// "no color": the renderer falls back to its default style.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// Run is a fragment of a source line sharing one color.
type Run struct {
	Text  string
	Color Color
}

// Line is the colored representation of a single source line,
// without its trailing newline.
type Line []Run

// Text reassembles the raw text of the line.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	var b strings.Builder
	for _, run := range l {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Colorizer maps raw text plus a filename hint to colored line runs.
// Implementations must succeed on any input: a file type they cannot
// classify still comes back as plain uncolored lines.
type Colorizer interface {
	Colorize(filename, text string) []Line
}

// splitLines breaks text into lines, dropping the line terminators.
// A trailing newline does not produce an extra empty line, matching
// how the preview pane counts source lines.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
