package state

import (
	"path/filepath"

	"github.com/ppdx999/lazycat/internal/highlight"
)

// Reducer applies actions to AppState. All mutations are synchronous and
// run on the loop goroutine; when Apply returns, the state invariants hold
// again even if the action hit an I/O failure.
type Reducer struct {
	colorizer highlight.Colorizer
}

// NewReducer creates a reducer using the given colorizer for file previews.
func NewReducer(colorizer highlight.Colorizer) *Reducer {
	return &Reducer{colorizer: colorizer}
}

// Apply mutates state according to action. A returned error is a
// user-facing diagnostic (e.g. navigation into an unreadable directory);
// the state is still consistent when it is non-nil.
func (r *Reducer) Apply(s *AppState, action Action) error {
	switch a := action.(type) {

	case MoveDownAction:
		if len(s.Entries) == 0 || s.SelectedIndex >= len(s.Entries)-1 {
			return nil
		}
		s.SelectedIndex++
		s.ensureSelectionVisible()
		r.rebuildPreview(s)
		return nil

	case MoveUpAction:
		if len(s.Entries) == 0 || s.SelectedIndex == 0 {
			return nil
		}
		s.SelectedIndex--
		s.ensureSelectionVisible()
		r.rebuildPreview(s)
		return nil

	case EnterAction:
		entry := s.CurrentEntry()
		if entry == nil || !entry.IsDir {
			return nil
		}

		// Validate the target before committing: a failed read must leave
		// the previous directory, entries and selection intact.
		entries, err := LoadDirectory(entry.FullPath)
		if err != nil {
			return err
		}

		s.CurrentPath = entry.FullPath
		s.Entries = entries
		s.SelectedIndex = 0
		s.ScrollOffset = 0
		r.rebuildPreview(s)
		return nil

	case GoParentAction:
		parent := filepath.Dir(s.CurrentPath)
		if parent == s.CurrentPath {
			return nil // Already at a filesystem root
		}

		oldDir := s.CurrentPath
		entries, err := LoadDirectory(parent)
		if err != nil {
			return err
		}

		s.CurrentPath = parent
		s.Entries = entries
		s.clampSelection()

		// Land back on the directory just exited, if it is still listed.
		for idx, e := range s.Entries {
			if e.FullPath == oldDir {
				s.SelectedIndex = idx
				break
			}
		}

		s.ensureSelectionVisible()
		r.rebuildPreview(s)
		return nil

	case RefreshAction:
		entries, err := LoadDirectory(s.CurrentPath)
		if err != nil {
			// The directory went away or became unreadable mid-session.
			// Degrade to an empty listing; the user can still go up or quit.
			s.Entries = nil
			s.SelectedIndex = 0
			s.ScrollOffset = 0
			r.rebuildPreview(s)
			return err
		}

		s.Entries = entries
		s.clampSelection()
		s.ensureSelectionVisible()
		r.rebuildPreview(s)
		return nil

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
		s.ensureSelectionVisible()
		return nil
	}

	return nil
}

// RebuildPreview forces the preview to match the current selection. Used
// once at startup after the initial directory load.
func (r *Reducer) RebuildPreview(s *AppState) {
	r.rebuildPreview(s)
}
