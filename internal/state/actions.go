package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type EnterAction struct{}
type GoParentAction struct{}
type RefreshAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
