package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	fsutil "github.com/ppdx999/lazycat/internal/fs"
	"github.com/ppdx999/lazycat/internal/highlight"
	"golang.org/x/text/unicode/norm"
)

// previewCharLimit bounds how much file text reaches the highlighter, so a
// huge file costs one bounded read instead of an unbounded render.
const previewCharLimit = 50000

// previewReadLimit bounds the bytes read from a previewed file. Every rune
// costs at most four bytes in UTF-8 or UTF-16, plus room for a BOM, so the
// head always yields previewCharLimit runes when the file has that many.
const previewReadLimit = 4*previewCharLimit + 4

// binaryPlaceholder is the single preview line shown for unreadable or
// non-text files.
const binaryPlaceholder = "[Binary file or cannot read]"

// SegmentKind is the semantic style of a preview segment. The renderer maps
// kinds to theme colors; syntax colors ride along separately.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentDirectory
	SegmentError
)

// Segment is a chunk of preview text with one style.
type Segment struct {
	Text  string
	Kind  SegmentKind
	Color highlight.Color
}

// StyledLine is one renderable preview line.
type StyledLine []Segment

// Preview is the rendered representation of the selected entry.
type Preview struct {
	Name  string
	IsDir bool
	Lines []StyledLine
}

// rebuildPreview recomputes state.Preview for the current selection. It is
// called at the end of every mutation that can change the selection or the
// directory, so callers never observe a stale preview.
func (r *Reducer) rebuildPreview(s *AppState) {
	entry := s.CurrentEntry()
	if entry == nil {
		s.Preview = nil
		return
	}

	preview := &Preview{Name: entry.Name, IsDir: entry.IsDir}
	if entry.IsDir {
		preview.Lines = directoryPreviewLines(entry.FullPath)
	} else {
		preview.Lines = r.filePreviewLines(entry)
	}
	s.Preview = preview
}

// directoryPreviewLines lists the immediate children of path, one line per
// child in pure name order. This intentionally differs from the main
// list's directories-first order.
func directoryPreviewLines(path string) []StyledLine {
	children, err := os.ReadDir(path)
	if err != nil {
		return []StyledLine{{Segment{
			Text: fmt.Sprintf("Cannot read directory: %v", err),
			Kind: SegmentError,
		}}}
	}

	type child struct {
		name  string
		isDir bool
	}
	items := make([]child, 0, len(children))
	for _, e := range children {
		isDir := e.IsDir()
		if info, err := e.Info(); err == nil && info.Mode()&os.ModeSymlink != 0 {
			if targetInfo, err := os.Stat(filepath.Join(path, e.Name())); err == nil {
				isDir = targetInfo.IsDir()
			}
		}
		items = append(items, child{
			name:  norm.NFC.String(e.Name()),
			isDir: isDir,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].name < items[j].name
	})

	lines := make([]StyledLine, 0, len(items))
	for _, item := range items {
		seg := Segment{Text: item.name}
		if item.isDir {
			seg.Text += "/"
			seg.Kind = SegmentDirectory
		}
		lines = append(lines, StyledLine{seg})
	}
	return lines
}

// filePreviewLines reads the file and hands its text to the colorizer.
// Read failures and binary content collapse to a single placeholder line.
func (r *Reducer) filePreviewLines(entry *FileEntry) []StyledLine {
	content, err := fsutil.ReadFileHead(entry.FullPath, previewReadLimit)
	if err != nil || !fsutil.IsTextFile(entry.FullPath, content) {
		return []StyledLine{{Segment{Text: binaryPlaceholder}}}
	}

	text := truncateRunes(fsutil.NormalizeTextContent(content), previewCharLimit)

	colored := r.colorizer.Colorize(entry.Name, text)
	lines := make([]StyledLine, len(colored))
	for i, line := range colored {
		styled := make(StyledLine, 0, len(line))
		for _, run := range line {
			styled = append(styled, Segment{Text: run.Text, Color: run.Color})
		}
		lines[i] = styled
	}
	return lines
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
