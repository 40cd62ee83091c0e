package domain

import "time"

// Department is the top-level grouping of the hierarchy. It owns zero or
// more Elements; a department with no matching elements still renders as an
// empty timeline row so filter legends stay complete.
type Department struct {
	ID   string
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
