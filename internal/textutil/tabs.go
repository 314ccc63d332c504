package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the column width of one tab stop in preview text.
const DefaultTabWidth = 4

// ExpandTabs replaces each tab with the spaces needed to reach the next
// tab stop, counting wide runes as two columns.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	col := 0
	for _, r := range text {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		if w := runewidth.RuneWidth(r); w > 1 {
			col += w
		} else {
			col++
		}
	}
	return b.String()
}

// DisplayWidth reports the printable column width of text.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}
