package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ppdx999/lazycat/internal/highlight"
	statepkg "github.com/ppdx999/lazycat/internal/state"
	"github.com/ppdx999/lazycat/internal/textutil"
)

const footerHelpText = " q: quit  ↑/↓: select  ↵/→: open  ←: parent  r: refresh "

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths widthCache
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := computeLayout(w)

	r.drawListPane(state, 0, layout.listWidth, h)
	if layout.showPreview {
		r.drawSeparator(layout.separatorX, h)
		r.drawPreviewPane(state, layout.previewStart, layout.previewWidth, h)
	}
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawListPane renders the entry list with the current directory as title.
func (r *Renderer) drawListPane(state *statepkg.AppState, startX, paneWidth, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	title := r.widths.fitPathTail(textutil.SanitizeTerminalText(state.CurrentPath), paneWidth-1)
	titleStyle := baseStyle.Foreground(r.theme.TitleFg).Bold(true)
	endX := r.drawTextLine(startX, 0, paneWidth, " "+title, titleStyle)
	for x := endX; x < startX+paneWidth; x++ {
		r.screen.SetContent(x, 0, ' ', nil, titleStyle)
	}

	bottomLimit := h - 1
	y := 1
	endIndex := state.ScrollOffset + state.ListViewportRows()
	if endIndex > len(state.Entries) {
		endIndex = len(state.Entries)
	}

	for idx := state.ScrollOffset; idx < endIndex; idx++ {
		if y >= bottomLimit {
			break
		}
		entry := state.Entries[idx]

		var rowStyle tcell.Style
		switch {
		case idx == state.SelectedIndex:
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
		case entry.IsSymlink:
			rowStyle = baseStyle.Foreground(r.theme.SymlinkFg)
		case entry.IsDir:
			rowStyle = baseStyle.Foreground(r.theme.DirectoryFg)
		default:
			rowStyle = baseStyle.Foreground(r.theme.FileFg)
		}

		// Icon: @ for symlinks, / for directories, space for files
		icon := " "
		if entry.IsSymlink {
			icon = "@"
		} else if entry.IsDir {
			icon = "/"
		}

		prefix := fmt.Sprintf(" %s ", icon)
		nameWidth := paneWidth - r.widths.measure(prefix)
		displayName := textutil.SanitizeTerminalText(entry.Name)
		if nameWidth > 0 {
			displayName = r.widths.truncateToWidth(displayName, nameWidth)
		} else {
			displayName = ""
		}

		endX := r.drawTextLine(startX, y, paneWidth, prefix+displayName, rowStyle)
		for x := endX; x < startX+paneWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, rowStyle)
		}
		y++
	}

	for ; y < bottomLimit; y++ {
		for x := startX; x < startX+paneWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}
}

func (r *Renderer) drawSeparator(x, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.Foreground)
	for y := 0; y < h-1; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

// drawPreviewPane renders the preview with the selected entry's name as
// title. Long lines wrap; lines past the bottom are dropped.
func (r *Renderer) drawPreviewPane(state *statepkg.AppState, startX, paneWidth, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.PreviewFg)

	title := "Preview"
	if state.Preview != nil {
		title = state.Preview.Name
	}
	title = r.widths.truncateToWidth(textutil.SanitizeTerminalText(title), paneWidth-1)
	titleStyle := baseStyle.Foreground(r.theme.TitleFg).Bold(true)
	endX := r.drawTextLine(startX, 0, paneWidth, " "+title, titleStyle)
	for x := endX; x < startX+paneWidth; x++ {
		r.screen.SetContent(x, 0, ' ', nil, titleStyle)
	}

	if state.Preview == nil {
		return
	}

	maxX := startX + paneWidth
	bottomLimit := h - 1
	y := 1
	for _, line := range state.Preview.Lines {
		if y >= bottomLimit {
			break
		}
		x := startX
		for _, seg := range line {
			style := r.segmentStyle(seg, baseStyle)
			// Preview text comes straight from file content.
			for _, ru := range textutil.SanitizeTerminalText(seg.Text) {
				if ru == '\t' {
					next := startX + ((x-startX)/textutil.DefaultTabWidth+1)*textutil.DefaultTabWidth
					for x < next && x < maxX {
						r.screen.SetContent(x, y, ' ', nil, style)
						x++
					}
				} else {
					width := r.widths.width(ru)
					if width <= 0 {
						width = 1
					}
					if x+width > maxX {
						// Wrap instead of clipping
						y++
						x = startX
						if y >= bottomLimit {
							break
						}
					}
					x = r.drawStyledRune(x, y, maxX, ru, style)
				}
				if y >= bottomLimit {
					break
				}
			}
			if y >= bottomLimit {
				break
			}
		}
		y++
	}
}

func (r *Renderer) segmentStyle(seg statepkg.Segment, baseStyle tcell.Style) tcell.Style {
	if seg.Color.Valid {
		return baseStyle.Foreground(colorToTcell(seg.Color))
	}
	switch seg.Kind {
	case statepkg.SegmentDirectory:
		return baseStyle.Foreground(r.theme.DirectoryFg)
	case statepkg.SegmentError:
		return baseStyle.Foreground(r.theme.ErrorFg)
	default:
		return baseStyle
	}
}

func colorToTcell(c highlight.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawFooter renders the help line, replaced by the last error diagnostic
// when one is pending.
func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	footerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	text := footerHelpText
	style := footerStyle
	if state.LastError != nil {
		text = " " + textutil.SanitizeTerminalText(state.LastError.Error()) + " "
		style = footerStyle.Foreground(r.theme.ErrorFg)
	}

	y := h - 1
	endX := r.drawTextLine(0, y, w, r.widths.truncateToWidth(text, w), style)
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, footerStyle)
	}
}
