package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/ppdx999/lazycat/internal/highlight"
	statepkg "github.com/ppdx999/lazycat/internal/state"
	inputui "github.com/ppdx999/lazycat/internal/ui/input"
	renderui "github.com/ppdx999/lazycat/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.Reducer
	renderer   *renderui.Renderer
	input      *inputui.Handler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// NewApplication acquires the terminal and loads the initial directory.
// A working directory that cannot be resolved or read is fatal: the screen
// is released and the error propagates to the process boundary.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	entries, err := statepkg.LoadDirectory(cwd)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	w, h := screen.Size()
	state := &statepkg.AppState{
		CurrentPath:  cwd,
		Entries:      entries,
		ScreenWidth:  w,
		ScreenHeight: h,
	}

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewReducer(highlight.NewChromaColorizer())
	reducer.RebuildPreview(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(actionCh),
		actionCh: actionCh,
	}, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
