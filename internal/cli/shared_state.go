package cli

import "github.com/alexanderramin/tempus/internal/contract"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Current timeline request: filters, view mode and scroll offset
	// survive view transitions so the board comes back as it was left.
	Request contract.TimelineRequest

	// Display name for the active department filter, empty when "all".
	DepartmentLabel string

	// Terminal dimensions
	Width  int
	Height int
}
