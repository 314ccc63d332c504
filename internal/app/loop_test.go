package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/ppdx999/lazycat/internal/highlight"
	statepkg "github.com/ppdx999/lazycat/internal/state"
	inputui "github.com/ppdx999/lazycat/internal/ui/input"
	renderui "github.com/ppdx999/lazycat/internal/ui/render"
)

func newTestApplication(t *testing.T, dir string) *Application {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	entries, err := statepkg.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("failed to load %s: %v", dir, err)
	}

	state := &statepkg.AppState{
		CurrentPath:  dir,
		Entries:      entries,
		ScreenWidth:  80,
		ScreenHeight: 24,
	}

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewReducer(highlight.NewPlainColorizer())
	reducer.RebuildPreview(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(actionCh),
		actionCh: actionCh,
	}
}

func TestHandleActionQuit(t *testing.T) {
	app := newTestApplication(t, t.TempDir())

	if app.handleAction(statepkg.QuitAction{}) {
		t.Fatalf("quit must not request a redraw")
	}
	if !app.shouldQuit {
		t.Fatalf("expected shouldQuit after QuitAction")
	}
}

func TestHandleEventKeySequenceNavigates(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "inner")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create inner: %v", err)
	}

	app := newTestApplication(t, tmpDir)

	// Enter "inner", then go back to the parent.
	app.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	app.processActions()
	if app.state.CurrentPath != sub {
		t.Fatalf("expected navigation into %q, got %q", sub, app.state.CurrentPath)
	}

	app.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, 0))
	app.processActions()
	if app.state.CurrentPath != tmpDir {
		t.Fatalf("expected navigation back to %q, got %q", tmpDir, app.state.CurrentPath)
	}
	entry := app.state.CurrentEntry()
	if entry == nil || entry.Name != "inner" {
		t.Fatalf("expected selection on the exited directory, got %v", entry)
	}
}

func TestHandleActionStoresDiagnostic(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "gone")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("failed to create gone: %v", err)
	}

	app := newTestApplication(t, sub)
	if err := os.RemoveAll(sub); err != nil {
		t.Fatalf("failed to remove gone: %v", err)
	}

	if !app.handleAction(statepkg.RefreshAction{}) {
		t.Fatalf("expected a redraw after refresh")
	}
	if app.state.LastError == nil {
		t.Fatalf("expected a footer diagnostic after failed refresh")
	}

	// The next successful action clears the diagnostic.
	if !app.handleAction(statepkg.GoParentAction{}) {
		t.Fatalf("expected a redraw after go parent")
	}
	if app.state.LastError != nil {
		t.Fatalf("expected diagnostic cleared, got %v", app.state.LastError)
	}
}
