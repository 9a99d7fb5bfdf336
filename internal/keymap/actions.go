// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"

	// Carousel actions, applied to the focused carousel
	ActionNext Action = "next"
	ActionPrev Action = "prev"
)
