package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ppdx999/lazycat/internal/state"
)

// Handler converts tcell events to Actions
type Handler struct {
	actionCh chan statepkg.Action
}

// NewHandler creates a new input handler
func NewHandler(actionCh chan statepkg.Action) *Handler {
	return &Handler{actionCh: actionCh}
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the event requests application shutdown.
func (h *Handler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.processKeyEvent(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.actionCh <- statepkg.ResizeAction{Width: w, Height: ht}
		return true
	default:
		return true
	}
}

func (h *Handler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.actionCh <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		h.actionCh <- statepkg.MoveUpAction{}
		return true

	case tcell.KeyDown:
		h.actionCh <- statepkg.MoveDownAction{}
		return true

	case tcell.KeyEnter, tcell.KeyRight:
		h.actionCh <- statepkg.EnterAction{}
		return true

	case tcell.KeyLeft:
		h.actionCh <- statepkg.GoParentAction{}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.actionCh <- statepkg.QuitAction{}
			return false
		case 'k':
			h.actionCh <- statepkg.MoveUpAction{}
		case 'j':
			h.actionCh <- statepkg.MoveDownAction{}
		case 'l':
			h.actionCh <- statepkg.EnterAction{}
		case 'h':
			h.actionCh <- statepkg.GoParentAction{}
		case 'r':
			h.actionCh <- statepkg.RefreshAction{}
		}
		return true

	default:
		// Unrecognized input is ignored.
		return true
	}
}
