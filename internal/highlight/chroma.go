package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const defaultStyleName = "monokai"

// ChromaColorizer colorizes source text with chroma lexers. Lexer choice
// follows the filename first, then content analysis; unknown file types
// fall back to the plain-text lexer rather than failing.
type ChromaColorizer struct {
	style *chroma.Style
}

// NewChromaColorizer returns a Colorizer backed by chroma's lexer registry.
func NewChromaColorizer() *ChromaColorizer {
	style := styles.Get(defaultStyleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaColorizer{style: style}
}

// Colorize implements Colorizer.
func (c *ChromaColorizer) Colorize(filename, text string) []Line {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return NewPlainColorizer().Colorize(filename, text)
	}

	lines := []Line{nil}
	for _, token := range iterator.Tokens() {
		color := c.colorFor(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			part = strings.TrimSuffix(part, "\r")
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], Run{Text: part, Color: color})
		}
	}

	// Tokenising "a\n" leaves an empty line after the final newline, and
	// lexers with EnsureNL append one even when the text has none; either
	// way the preview counts that file as one line.
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

func (c *ChromaColorizer) colorFor(tokenType chroma.TokenType) Color {
	entry := c.style.Get(tokenType)
	if !entry.Colour.IsSet() {
		return Color{}
	}
	return Color{
		R:     entry.Colour.Red(),
		G:     entry.Colour.Green(),
		B:     entry.Colour.Blue(),
		Valid: true,
	}
}
