package timeline

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// DaysToShow returns the visible window length for a view mode.
func DaysToShow(mode domain.ViewMode) int {
	switch mode {
	case domain.ViewDay:
		return 14
	case domain.ViewMonth:
		return 60
	default:
		return 30
	}
}

// ScrollStep returns the pan step size for a view mode.
func ScrollStep(mode domain.ViewMode) int {
	switch mode {
	case domain.ViewDay:
		return 7
	case domain.ViewMonth:
		return 30
	default:
		return 14
	}
}

// Window is a clamped visible slice over the full padded range. It is a
// value type: Scroll and WithViewMode return adjusted copies.
type Window struct {
	days   []time.Time
	mode   domain.ViewMode
	offset int
}

// NewWindow builds a window over the full day sequence, clamping the
// requested offset into [0, totalDays-windowLength]. The window length never
// exceeds the total day count.
func NewWindow(days []time.Time, mode domain.ViewMode, offset int) Window {
	w := Window{days: days, mode: mode, offset: offset}
	w.offset = clampOffset(offset, len(days), w.Length())
	return w
}

// Length returns the effective window length in days.
func (w Window) Length() int {
	n := DaysToShow(w.mode)
	if n > len(w.days) {
		n = len(w.days)
	}
	return n
}

// Offset returns the clamped scroll offset.
func (w Window) Offset() int { return w.offset }

// Mode returns the window's view mode.
func (w Window) Mode() domain.ViewMode { return w.mode }

// VisibleDays returns the contiguous day slice currently in view.
func (w Window) VisibleDays() []time.Time {
	if len(w.days) == 0 {
		return nil
	}
	return w.days[w.offset : w.offset+w.Length()]
}

// Scroll pans the window by the mode's step size, clamped at both ends.
// Scrolling past a boundary is a no-op rather than an error.
func (w Window) Scroll(dir domain.ScrollDirection) Window {
	step := ScrollStep(w.mode)
	if dir == domain.ScrollLeft {
		step = -step
	}
	w.offset = clampOffset(w.offset+step, len(w.days), w.Length())
	return w
}

// WithViewMode re-derives the window with a new length from the same offset.
// The offset is preserved and re-clamped, not reset.
func (w Window) WithViewMode(mode domain.ViewMode) Window {
	return NewWindow(w.days, mode, w.offset)
}

func clampOffset(offset, totalDays, windowLen int) int {
	maxOffset := totalDays - windowLen
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
