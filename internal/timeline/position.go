package timeline

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// PositionedInterval expresses a date interval as left/width percentages
// relative to the visible window. A nil *PositionedInterval means the
// interval does not intersect the window and must not render.
type PositionedInterval struct {
	LeftPercent  float64
	WidthPercent float64
}

// PositionInterval maps an inclusive [start, due] interval onto the visible
// window. Intervals are clipped at the window edges before the linear
// mapping, which keeps left >= 0 and left+width <= 100 without any further
// clamping. Equal start and due yield a one-day-wide bar.
func PositionInterval(start, due time.Time, visibleDays []time.Time) *PositionedInterval {
	if len(visibleDays) == 0 {
		return nil
	}
	start, due = domain.DateOnly(start), domain.DateOnly(due)
	if due.Before(start) {
		return nil
	}

	first := visibleDays[0]
	last := visibleDays[len(visibleDays)-1]
	if due.Before(first) || start.After(last) {
		return nil
	}

	effStart := domain.MaxDate(start, first)
	effEnd := domain.MinDate(due, last)

	cellWidth := 100.0 / float64(len(visibleDays))
	startIndex := domain.DaysBetween(first, effStart)
	duration := domain.DaysBetween(effStart, effEnd) + 1

	return &PositionedInterval{
		LeftPercent:  float64(startIndex) * cellWidth,
		WidthPercent: float64(duration) * cellWidth,
	}
}

// PositionTask positions a task's interval, or nil for undated tasks.
func PositionTask(t *domain.Task, visibleDays []time.Time) *PositionedInterval {
	if !t.HasInterval() {
		return nil
	}
	return PositionInterval(*t.StartDate, *t.DueDate, visibleDays)
}

// PositionElement positions an element's (possibly derived) interval.
func PositionElement(e *domain.Element, visibleDays []time.Time) *PositionedInterval {
	if !e.HasInterval() {
		return nil
	}
	return PositionInterval(*e.StartDate, *e.DueDate, visibleDays)
}
