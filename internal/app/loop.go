package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/ppdx999/lazycat/internal/state"
)

// pollInterval bounds how long the loop waits for input, keeping the render
// loop alive even when the user is idle.
const pollInterval = 100 * time.Millisecond

// Run drives the event loop until a quit command arrives. The screen is
// released on every exit path.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			eventCh <- app.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for !app.shouldQuit {
		renderPending := false

		select {
		case ev := <-eventCh:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-ticker.C:
			// Nothing to do; the bounded wait keeps the loop responsive.
		}

		if app.processActions() {
			renderPending = true
		}
		if renderPending && !app.shouldQuit {
			app.renderer.Render(app.state)
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		app.screen.Sync()
	default:
		return false
	}
	return true
}

// processActions drains the action channel, applying each mutation in
// order on the loop goroutine.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return false
	}

	app.state.LastError = app.reducer.Apply(app.state, action)
	return true
}
