package app

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// TimelineRequest carries the control surface of a timeline derivation. Now
// is injected by callers; nil means the wall clock at execution time.
type TimelineRequest struct {
	Now              *time.Time
	DepartmentFilter string
	StatusFilter     string
	ViewMode         string
	ScrollOffset     int
}

func NewTimelineRequest() TimelineRequest {
	return TimelineRequest{
		DepartmentFilter: domain.FilterAll,
		StatusFilter:     domain.FilterAll,
		ViewMode:         string(domain.ViewWeek),
	}
}

// BarView is a positioned horizontal bar, in percent of the window width.
type BarView struct {
	LeftPct  float64
	WidthPct float64
}

type TaskBarView struct {
	TaskID   string
	Title    string
	Status   domain.TaskStatus
	Assignee string
	Bar      *BarView
}

type ElementRowView struct {
	ElementID string
	Title     string
	Synthetic bool
	Bar       *BarView
	Tasks     []TaskBarView
}

type DepartmentSectionView struct {
	DepartmentID string
	Name         string
	Elements     []ElementRowView
}

type BucketView struct {
	Key      string
	Label    string
	Sublabel string
	Span     int
	IsToday  bool
}

type DepartmentAnalyticsView struct {
	DepartmentID   string
	Name           string
	TotalTasks     int
	CompletedTasks int
	Percentage     int
}

type TimelineResponse struct {
	// Empty is true when no dated task survives the filters; Sections and
	// Analytics are still populated so filter legends stay complete.
	Empty bool

	RangeStart string
	RangeEnd   string
	DayCount   int

	ViewMode string
	Offset   int

	Buckets      []BucketView
	Sections     []DepartmentSectionView
	TodayPercent *float64
	Analytics    []DepartmentAnalyticsView
	DailyCounts  []int
}
