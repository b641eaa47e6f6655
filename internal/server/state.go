package server

import "fmt"

// UIState is the explicit interaction state the presentation layer carries
// between requests: which view is active, any pending feedback banner, and
// whether transient form inputs should be cleared. Handlers take the prior
// state and return the next one instead of the client keeping ad hoc flags.
type UIState struct {
	View      string `json:"view,omitempty"`
	Banner    string `json:"banner,omitempty"`
	ClearForm bool   `json:"clear_form"`
}

// nextSubmitState derives the state to hand back after a submission with
// the given committed row count.
func nextSubmitState(prev UIState, rows int) UIState {
	next := UIState{View: prev.View}
	if rows > 0 {
		next.Banner = fmt.Sprintf("Logged %d set(s)", rows)
		next.ClearForm = true
		return next
	}
	next.Banner = "No values entered to log"
	return next
}
