package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayPosition_InsideWindow(t *testing.T) {
	visible := daySpan(date(2024, 1, 1), 10)

	pos := TodayPosition(visible, date(2024, 1, 4))
	require.NotNil(t, pos)
	assert.InDelta(t, 30.0, *pos, 1e-9)
}

func TestTodayPosition_AtWindowEdges(t *testing.T) {
	visible := daySpan(date(2024, 1, 1), 10)

	pos := TodayPosition(visible, date(2024, 1, 1))
	require.NotNil(t, pos)
	assert.InDelta(t, 0.0, *pos, 1e-9)

	pos = TodayPosition(visible, date(2024, 1, 10))
	require.NotNil(t, pos)
	assert.InDelta(t, 90.0, *pos, 1e-9)
}

func TestTodayPosition_OutsideWindowIsNil(t *testing.T) {
	visible := daySpan(date(2024, 1, 10), 10)

	assert.Nil(t, TodayPosition(visible, date(2024, 1, 9)))
	assert.Nil(t, TodayPosition(visible, date(2024, 1, 20)))
	assert.Nil(t, TodayPosition(nil, date(2024, 1, 9)))
}

func TestTodayPosition_IgnoresTimeOfDay(t *testing.T) {
	visible := daySpan(date(2024, 1, 1), 10)

	now := time.Date(2024, 1, 4, 18, 30, 0, 0, time.UTC)
	pos := TodayPosition(visible, now)
	require.NotNil(t, pos)
	assert.InDelta(t, 30.0, *pos, 1e-9)
}
