package timeline

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// RangePadDays is the calendar-day margin added to both ends of the resolved
// range before any windowing occurs.
const RangePadDays = 7

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TotalDays returns the inclusive day count of the range.
func (r DateRange) TotalDays() int {
	return domain.DaysBetween(r.Start, r.End) + 1
}

// Days expands the range into its ordered, contiguous day sequence.
func (r DateRange) Days() []time.Time {
	n := r.TotalDays()
	if n <= 0 {
		return nil
	}
	days := make([]time.Time, n)
	for i := range days {
		days[i] = r.Start.AddDate(0, 0, i)
	}
	return days
}

// ResolveRange computes the padded date range spanning every dated task in
// the given element groups. The second return value is false when no task
// carries an interval; callers short-circuit to an empty state instead of
// deriving a zero-width window.
func ResolveRange(groups []*domain.ElementGroup, padDays int) (DateRange, bool) {
	var minStart, maxEnd *time.Time
	for _, g := range groups {
		for _, t := range g.Tasks {
			if !t.HasInterval() {
				continue
			}
			if minStart == nil || t.StartDate.Before(*minStart) {
				minStart = t.StartDate
			}
			if maxEnd == nil || t.DueDate.After(*maxEnd) {
				maxEnd = t.DueDate
			}
		}
	}
	if minStart == nil || maxEnd == nil {
		return DateRange{}, false
	}
	return DateRange{
		Start: minStart.AddDate(0, 0, -padDays),
		End:   maxEnd.AddDate(0, 0, padDays),
	}, true
}
