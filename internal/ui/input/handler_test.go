package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ppdx999/lazycat/internal/state"
)

func drainOne(t *testing.T, actionCh chan statepkg.Action) statepkg.Action {
	t.Helper()
	select {
	case action := <-actionCh:
		return action
	default:
		t.Fatal("expected an action to be emitted")
		return nil
	}
}

func TestKeyBindingsProduceCommands(t *testing.T) {
	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect statepkg.Action
	}{
		{name: "down arrow", event: tcell.NewEventKey(tcell.KeyDown, 0, 0), expect: statepkg.MoveDownAction{}},
		{name: "up arrow", event: tcell.NewEventKey(tcell.KeyUp, 0, 0), expect: statepkg.MoveUpAction{}},
		{name: "j moves down", event: tcell.NewEventKey(tcell.KeyRune, 'j', 0), expect: statepkg.MoveDownAction{}},
		{name: "k moves up", event: tcell.NewEventKey(tcell.KeyRune, 'k', 0), expect: statepkg.MoveUpAction{}},
		{name: "enter descends", event: tcell.NewEventKey(tcell.KeyEnter, 0, 0), expect: statepkg.EnterAction{}},
		{name: "right descends", event: tcell.NewEventKey(tcell.KeyRight, 0, 0), expect: statepkg.EnterAction{}},
		{name: "l descends", event: tcell.NewEventKey(tcell.KeyRune, 'l', 0), expect: statepkg.EnterAction{}},
		{name: "left goes to parent", event: tcell.NewEventKey(tcell.KeyLeft, 0, 0), expect: statepkg.GoParentAction{}},
		{name: "h goes to parent", event: tcell.NewEventKey(tcell.KeyRune, 'h', 0), expect: statepkg.GoParentAction{}},
		{name: "r refreshes", event: tcell.NewEventKey(tcell.KeyRune, 'r', 0), expect: statepkg.RefreshAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionCh := make(chan statepkg.Action, 1)
			handler := NewHandler(actionCh)

			if !handler.ProcessEvent(tt.event) {
				t.Fatalf("non-quit key must not request shutdown")
			}
			if action := drainOne(t, actionCh); action != tt.expect {
				t.Fatalf("expected %T, got %T", tt.expect, action)
			}
		})
	}
}

func TestQuitKeysRequestShutdown(t *testing.T) {
	events := map[string]*tcell.EventKey{
		"q":      tcell.NewEventKey(tcell.KeyRune, 'q', 0),
		"escape": tcell.NewEventKey(tcell.KeyEscape, 0, 0),
		"ctrl-c": tcell.NewEventKey(tcell.KeyCtrlC, 0, 0),
	}

	for name, event := range events {
		t.Run(name, func(t *testing.T) {
			actionCh := make(chan statepkg.Action, 1)
			handler := NewHandler(actionCh)

			if handler.ProcessEvent(event) {
				t.Fatalf("expected %s to request shutdown", name)
			}
			if _, ok := drainOne(t, actionCh).(statepkg.QuitAction); !ok {
				t.Fatalf("expected QuitAction for %s", name)
			}
		})
	}
}

func TestUnrecognizedInputIsIgnored(t *testing.T) {
	actionCh := make(chan statepkg.Action, 1)
	handler := NewHandler(actionCh)

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', 0)) {
		t.Fatalf("unknown rune must not request shutdown")
	}
	select {
	case action := <-actionCh:
		t.Fatalf("expected no action for unknown rune, got %T", action)
	default:
	}
}

func TestResizeEventProducesResizeAction(t *testing.T) {
	actionCh := make(chan statepkg.Action, 1)
	handler := NewHandler(actionCh)

	handler.ProcessEvent(tcell.NewEventResize(120, 40))
	action := drainOne(t, actionCh)
	resize, ok := action.(statepkg.ResizeAction)
	if !ok {
		t.Fatalf("expected ResizeAction, got %T", action)
	}
	if resize.Width != 120 || resize.Height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", resize.Width, resize.Height)
	}
}
