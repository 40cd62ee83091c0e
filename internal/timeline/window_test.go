package timeline

import (
	"testing"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysToShow(t *testing.T) {
	assert.Equal(t, 14, DaysToShow(domain.ViewDay))
	assert.Equal(t, 30, DaysToShow(domain.ViewWeek))
	assert.Equal(t, 60, DaysToShow(domain.ViewMonth))
}

func TestScrollStep(t *testing.T) {
	assert.Equal(t, 7, ScrollStep(domain.ViewDay))
	assert.Equal(t, 14, ScrollStep(domain.ViewWeek))
	assert.Equal(t, 30, ScrollStep(domain.ViewMonth))
}

func TestWindow_VisibleDaysLength(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 90)

	w := NewWindow(days, domain.ViewDay, 0)
	assert.Len(t, w.VisibleDays(), 14)

	w = NewWindow(days, domain.ViewWeek, 0)
	assert.Len(t, w.VisibleDays(), 30)

	w = NewWindow(days, domain.ViewMonth, 0)
	assert.Len(t, w.VisibleDays(), 60)
}

func TestWindow_LengthNeverExceedsTotalDays(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 10)
	w := NewWindow(days, domain.ViewMonth, 0)
	assert.Len(t, w.VisibleDays(), 10)
	assert.Equal(t, 0, w.Offset())
}

func TestWindow_ScrollRightAdvancesByStep(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 90)
	w := NewWindow(days, domain.ViewWeek, 0)

	w = w.Scroll(domain.ScrollRight)
	assert.Equal(t, 14, w.Offset())
	assert.Equal(t, date(2024, 1, 15), w.VisibleDays()[0])
}

func TestWindow_ScrollLeftAtZeroIsIdempotent(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 90)
	w := NewWindow(days, domain.ViewWeek, 0)

	w = w.Scroll(domain.ScrollLeft)
	assert.Equal(t, 0, w.Offset())
	assert.Equal(t, date(2024, 1, 1), w.VisibleDays()[0])
}

func TestWindow_ScrollClampsAtRightBoundary(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 40)
	w := NewWindow(days, domain.ViewWeek, 0) // max offset 10

	w = w.Scroll(domain.ScrollRight)
	assert.Equal(t, 10, w.Offset())
	w = w.Scroll(domain.ScrollRight)
	assert.Equal(t, 10, w.Offset(), "scrolling past the boundary stays clamped")
}

func TestWindow_OffsetClampedOnConstruction(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 40)
	w := NewWindow(days, domain.ViewWeek, 999)
	assert.Equal(t, 10, w.Offset())

	w = NewWindow(days, domain.ViewWeek, -3)
	assert.Equal(t, 0, w.Offset())
}

func TestWindow_ViewModeSwitchPreservesOffset(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 90)
	w := NewWindow(days, domain.ViewDay, 20)
	require.Equal(t, 20, w.Offset())

	// day (14) -> month (60): window grows, offset re-clamps to 90-60=30,
	// so 20 survives unchanged.
	m := w.WithViewMode(domain.ViewMonth)
	assert.Equal(t, 20, m.Offset())
	assert.Len(t, m.VisibleDays(), 60)

	// Offset beyond the new max gets re-clamped rather than reset.
	w = NewWindow(days, domain.ViewDay, 76)
	m = w.WithViewMode(domain.ViewMonth)
	assert.Equal(t, 30, m.Offset())
}

func TestWindow_VisibleDaysContiguous(t *testing.T) {
	days := daySpan(date(2024, 1, 1), 60)
	w := NewWindow(days, domain.ViewWeek, 7)
	visible := w.VisibleDays()
	for i := 1; i < len(visible); i++ {
		assert.Equal(t, 1, domain.DaysBetween(visible[i-1], visible[i]))
	}
}
