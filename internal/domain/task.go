package domain

import "time"

// Task is the leaf of the hierarchy. ElementID may be empty; such tasks keep
// a direct department link and are gathered into a synthesized ungrouped
// element at snapshot build time.
type Task struct {
	ID           string
	Title        string
	ElementID    string
	DepartmentID string
	StartDate    *time.Time
	DueDate      *time.Time
	Status       TaskStatus
	ProgressPct  int
	Assignee     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasInterval reports whether the task carries a positionable date range.
// Tasks without one are excluded from the timeline but still count toward
// completion analytics.
func (t *Task) HasInterval() bool {
	return t.StartDate != nil && t.DueDate != nil
}

// MatchesStatus reports whether the task matches a status filter value
// ("all" or a TaskStatus string).
func (t *Task) MatchesStatus(filter string) bool {
	return filter == FilterAll || string(t.Status) == filter
}
