package timeline

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// ElementRow is one positionable row of the layout: a filtered element with
// its surviving tasks.
type ElementRow struct {
	Element   *domain.Element
	Tasks     []*domain.Task
	Synthetic bool
}

// DepartmentRow groups the layout's element rows under their department.
// Departments with no surviving elements keep an empty row.
type DepartmentRow struct {
	Department *domain.Department
	Elements   []ElementRow
}

// Layout is the full model consumed by a renderer: numeric bar positions,
// header buckets, filtered rows and aggregates. It carries no rendering
// primitives.
type Layout struct {
	// Empty is true when no task in the filtered set carries dates; all
	// other fields except Rows and Analytics are zero in that case.
	Empty bool

	Range       DateRange
	VisibleDays []time.Time
	Buckets     []DayBucket
	Rows        []DepartmentRow

	// Positions maps element and task IDs to their bar positions. IDs whose
	// interval does not intersect the window are absent.
	Positions map[string]PositionedInterval

	TodayPercent *float64
	Analytics    []DepartmentStats
	DailyCounts  []int

	// Offset is the clamped scroll offset the layout was derived from.
	Offset int
}

// Engine owns the control surface of the timeline: the current snapshot,
// filters, view mode and scroll offset. Every computation is a pure function
// of these inputs plus the injected today date; Layout recomputes the whole
// model on each call.
type Engine struct {
	snapshot     *domain.Snapshot
	today        time.Time
	mode         domain.ViewMode
	offset       int
	deptFilter   string
	statusFilter string
}

// NewEngine creates an engine over a snapshot with week view, no filters and
// a zero scroll offset.
func NewEngine(snapshot *domain.Snapshot, today time.Time) *Engine {
	return &Engine{
		snapshot:     snapshot,
		today:        domain.DateOnly(today),
		mode:         domain.ViewWeek,
		deptFilter:   domain.FilterAll,
		statusFilter: domain.FilterAll,
	}
}

// SetSnapshot replaces the snapshot after a fresh data fetch. Filters, view
// mode and scroll offset are preserved.
func (e *Engine) SetSnapshot(snapshot *domain.Snapshot) { e.snapshot = snapshot }

// SetToday updates the injected current date.
func (e *Engine) SetToday(today time.Time) { e.today = domain.DateOnly(today) }

// SetViewMode switches the view resolution. The scroll offset is kept and
// re-clamped on the next Layout call, never reset.
func (e *Engine) SetViewMode(mode domain.ViewMode) {
	if domain.ValidViewModes[string(mode)] {
		e.mode = mode
	}
}

// ViewMode returns the current view resolution.
func (e *Engine) ViewMode() domain.ViewMode { return e.mode }

// SetScrollOffset jumps to an absolute offset; it is clamped on the next
// layout derivation.
func (e *Engine) SetScrollOffset(offset int) { e.offset = offset }

// Scroll pans the window by the mode's step, clamped to the range bounds.
// Scrolling an empty timeline is a no-op.
func (e *Engine) Scroll(dir domain.ScrollDirection) {
	groups := FilterElements(e.snapshot, e.deptFilter, e.statusFilter)
	r, ok := ResolveRange(groups, RangePadDays)
	if !ok {
		return
	}
	w := NewWindow(r.Days(), e.mode, e.offset).Scroll(dir)
	e.offset = w.Offset()
}

// SetFilters replaces the department and status filters. Empty values mean
// "all".
func (e *Engine) SetFilters(department, status string) {
	if department == "" {
		department = domain.FilterAll
	}
	if status == "" {
		status = domain.FilterAll
	}
	e.deptFilter = department
	e.statusFilter = status
}

// Filters returns the active department and status filters.
func (e *Engine) Filters() (department, status string) {
	return e.deptFilter, e.statusFilter
}

// Layout derives the full layout model from the engine's current inputs.
func (e *Engine) Layout() Layout {
	groups := FilterElements(e.snapshot, e.deptFilter, e.statusFilter)
	analytics := AggregateDepartments(e.snapshot.Departments, groups)

	r, ok := ResolveRange(groups, RangePadDays)
	if !ok {
		return Layout{
			Empty:     true,
			Rows:      departmentRows(e.snapshot.Departments, groups),
			Analytics: analytics,
		}
	}

	w := NewWindow(r.Days(), e.mode, e.offset)
	e.offset = w.Offset()
	visible := w.VisibleDays()

	positions := make(map[string]PositionedInterval)
	for _, g := range groups {
		if p := PositionElement(g.Element, visible); p != nil {
			positions[g.Element.ID] = *p
		}
		for _, t := range g.Tasks {
			if p := PositionTask(t, visible); p != nil {
				positions[t.ID] = *p
			}
		}
	}

	return Layout{
		Range:        r,
		VisibleDays:  visible,
		Buckets:      GroupBuckets(visible, e.mode, e.today),
		Rows:         departmentRows(e.snapshot.Departments, groups),
		Positions:    positions,
		TodayPercent: TodayPosition(visible, e.today),
		Analytics:    analytics,
		DailyCounts:  DailyTaskCounts(groups, visible),
		Offset:       e.offset,
	}
}

func departmentRows(departments []*domain.Department, groups []*domain.ElementGroup) []DepartmentRow {
	rows := make([]DepartmentRow, len(departments))
	index := make(map[string]int, len(departments))
	for i, d := range departments {
		rows[i] = DepartmentRow{Department: d}
		index[d.ID] = i
	}
	for _, g := range groups {
		i, ok := index[g.Element.DepartmentID]
		if !ok {
			continue
		}
		rows[i].Elements = append(rows[i].Elements, ElementRow{
			Element:   g.Element,
			Tasks:     g.Tasks,
			Synthetic: g.Synthetic,
		})
	}
	return rows
}
