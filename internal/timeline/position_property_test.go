package timeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Positioning invariants over randomized intervals and windows: left >= 0,
// left+width <= 100, and nil exactly when the interval misses the window.
func TestPositionInterval_Property_BoundsHold(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	origin := date(2024, 1, 1)

	for i := 0; i < 2000; i++ {
		windowStart := origin.AddDate(0, 0, rng.Intn(120))
		windowLen := 1 + rng.Intn(60)
		visible := daySpan(windowStart, windowLen)

		start := origin.AddDate(0, 0, rng.Intn(200))
		due := start.AddDate(0, 0, rng.Intn(40))

		p := PositionInterval(start, due, visible)

		first := visible[0]
		last := visible[len(visible)-1]
		intersects := !due.Before(first) && !start.After(last)

		if !intersects {
			assert.Nil(t, p, "non-intersecting interval must not position")
			continue
		}
		require.NotNil(t, p, "intersecting interval must position")
		assert.GreaterOrEqual(t, p.LeftPercent, 0.0)
		assert.Greater(t, p.WidthPercent, 0.0)
		assert.LessOrEqual(t, p.LeftPercent+p.WidthPercent, 100.0+1e-9)
	}
}

// Scrolling and re-clamping must never push the window out of the range.
func TestWindow_Property_OffsetAlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		total := 1 + rng.Intn(200)
		days := daySpan(date(2024, 1, 1), total)
		w := NewWindow(days, randomMode(rng), rng.Intn(300)-50)

		for j := 0; j < 10; j++ {
			if rng.Intn(2) == 0 {
				w = w.Scroll(randomDirection(rng))
			} else {
				w = w.WithViewMode(randomMode(rng))
			}
			assert.GreaterOrEqual(t, w.Offset(), 0)
			assert.LessOrEqual(t, w.Offset()+w.Length(), total)
			assert.Len(t, w.VisibleDays(), w.Length())
		}
	}
}
