package views

import (
	"elementquiz/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	TabCursor   float64 // animated mode highlight, 0 = flashcard, 1 = quiz
	SpinnerView string
	ChartView   string
	InputView   string
	HelpView    string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
