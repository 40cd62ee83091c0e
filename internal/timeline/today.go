package timeline

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// TodayPosition locates today's left percentage within the visible window,
// or nil when today is scrolled out of view. Today is an injected parameter,
// never read from the ambient clock.
func TodayPosition(visibleDays []time.Time, today time.Time) *float64 {
	if len(visibleDays) == 0 {
		return nil
	}
	today = domain.DateOnly(today)
	first := visibleDays[0]
	last := visibleDays[len(visibleDays)-1]
	if today.Before(first) || today.After(last) {
		return nil
	}
	cellWidth := 100.0 / float64(len(visibleDays))
	pos := float64(domain.DaysBetween(first, today)) * cellWidth
	return &pos
}
