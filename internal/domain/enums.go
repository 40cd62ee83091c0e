package domain

import "strings"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// statusAliases maps the raw status spellings seen in imported data onto the
// closed TaskStatus enum. Normalization happens once at ingestion; nothing
// downstream re-parses raw strings.
var statusAliases = map[string]TaskStatus{
	"todo":        TaskTodo,
	"to_do":       TaskTodo,
	"to-do":       TaskTodo,
	"open":        TaskTodo,
	"in_progress": TaskInProgress,
	"in-progress": TaskInProgress,
	"in progress": TaskInProgress,
	"doing":       TaskInProgress,
	"done":        TaskDone,
	"completed":   TaskDone,
	"complete":    TaskDone,
	"closed":      TaskDone,
}

// NormalizeStatus maps a raw status string onto the TaskStatus enum.
// Unknown or empty values degrade to todo rather than failing the ingest.
func NormalizeStatus(raw string) TaskStatus {
	if s, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return TaskTodo
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"day": true, "week": true, "month": true,
}

type ScrollDirection string

const (
	ScrollLeft  ScrollDirection = "left"
	ScrollRight ScrollDirection = "right"
)

// FilterAll is the wildcard value accepted by both the department and the
// status filter.
const FilterAll = "all"
