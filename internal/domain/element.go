package domain

import "time"

// Element is a work package under a department. Its dates are optional: when
// absent they are derived from the min/max of its tasks' dates during
// snapshot construction, never persisted.
type Element struct {
	ID           string
	Title        string
	DepartmentID string
	StartDate    *time.Time
	DueDate      *time.Time
	Priority     Priority

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasInterval reports whether the element carries a positionable date range.
func (e *Element) HasInterval() bool {
	return e.StartDate != nil && e.DueDate != nil
}
