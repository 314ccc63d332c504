package state

import (
	fsutil "github.com/ppdx999/lazycat/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// AppState is the single source of truth for the browser session. It is
// owned and mutated exclusively by the event loop; every mutation leaves
// SelectedIndex inside [0, len(Entries)) (or 0 when empty) and Preview
// consistent with the selected entry.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry // Always sorted: directories first, then name

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Preview, derived from (CurrentPath, Entries, SelectedIndex)
	Preview *Preview

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Last failed operation, shown as a footer diagnostic
	LastError error
}

// CurrentEntry returns the selected entry, or nil when the listing is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// ListViewportRows reports how many list rows fit between the title row
// and the footer line.
func (s *AppState) ListViewportRows() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *AppState) clampSelection() {
	if len(s.Entries) == 0 {
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		return
	}
	if s.SelectedIndex >= len(s.Entries) {
		s.SelectedIndex = len(s.Entries) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// ensureSelectionVisible adjusts ScrollOffset so the selected row is on screen.
func (s *AppState) ensureSelectionVisible() {
	rows := s.ListViewportRows()

	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+rows {
		s.ScrollOffset = s.SelectedIndex - rows + 1
	}

	maxOffset := len(s.Entries) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
