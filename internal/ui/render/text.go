package render

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// widthCache memoizes rune display widths. ASCII widths live in a fixed
// table filled on first use; everything else goes through a sync.Map.
// Stored ASCII values are width+1 so the zero value means "not cached yet".
type widthCache struct {
	mu    sync.RWMutex
	ascii [128]int8
	wide  sync.Map
}

func (c *widthCache) width(ru rune) int {
	if ru >= 0 && ru < 128 {
		c.mu.RLock()
		cached := c.ascii[ru]
		c.mu.RUnlock()
		if cached > 0 {
			return int(cached) - 1
		}

		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		c.mu.Lock()
		c.ascii[ru] = int8(w) + 1
		c.mu.Unlock()
		return w
	}

	if cached, ok := c.wide.Load(ru); ok {
		return cached.(int)
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	c.wide.Store(ru, w)
	return w
}

func (c *widthCache) measure(text string) int {
	total := 0
	for _, ru := range text {
		total += c.width(ru)
	}
	return total
}

const truncationEllipsis = '…'

// truncateToWidth cuts text on the right, appending an ellipsis when
// anything was dropped.
func (c *widthCache) truncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if c.measure(text) <= maxWidth {
		return text
	}

	ellipsisWidth := c.width(truncationEllipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(truncationEllipsis)
	}

	budget := maxWidth - ellipsisWidth
	var b strings.Builder
	used := 0
	for _, ru := range text {
		w := c.width(ru)
		if used+w > budget {
			break
		}
		b.WriteRune(ru)
		used += w
	}
	b.WriteRune(truncationEllipsis)
	return b.String()
}

// fitPathTail cuts a path on the left, keeping its tail: for a title bar
// the deepest components matter more than the root.
func (c *widthCache) fitPathTail(path string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if c.measure(path) <= maxWidth {
		return path
	}

	ellipsisWidth := c.width(truncationEllipsis)
	if ellipsisWidth <= 0 {
		ellipsisWidth = 1
	}
	if maxWidth <= ellipsisWidth {
		return string(truncationEllipsis)
	}

	budget := maxWidth - ellipsisWidth
	runes := []rune(path)
	used := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		w := c.width(runes[i])
		if used+w > budget {
			break
		}
		used += w
		start = i
	}
	return string(truncationEllipsis) + string(runes[start:])
}

// drawTextLine writes text at (startX, y), clipped to maxWidth columns,
// and returns the x position after the last cell written.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x-startX >= maxWidth {
			break
		}
		x = r.drawStyledRune(x, y, startX+maxWidth, ru, style)
	}
	return x
}

// drawStyledRune writes one rune, padding the extra cells of wide runes so
// stale content never shows through, and returns the next x position.
func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}

	width := r.widths.width(ru)
	if width <= 0 {
		width = 1
	}

	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width && x+w < maxX; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}
