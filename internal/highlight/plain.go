package highlight

// PlainColorizer is the identity strategy: every line comes back as a
// single uncolored run.
type PlainColorizer struct{}

// NewPlainColorizer returns a Colorizer that applies no coloring.
func NewPlainColorizer() PlainColorizer {
	return PlainColorizer{}
}

// Colorize implements Colorizer.
func (PlainColorizer) Colorize(_, text string) []Line {
	raw := splitLines(text)
	if len(raw) == 0 {
		return nil
	}
	lines := make([]Line, len(raw))
	for i, line := range raw {
		if line == "" {
			lines[i] = Line{}
			continue
		}
		lines[i] = Line{{Text: line}}
	}
	return lines
}
