package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBuildSnapshot_DerivesElementDatesFromTasks(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Engineering"}
	elem := &Element{ID: "e1", Title: "Launch", DepartmentID: "d1"}
	tasks := []*Task{
		{ID: "t1", ElementID: "e1", StartDate: datePtr(2024, 1, 10), DueDate: datePtr(2024, 1, 12)},
		{ID: "t2", ElementID: "e1", StartDate: datePtr(2024, 1, 2), DueDate: datePtr(2024, 1, 5)},
	}

	snap := BuildSnapshot([]*Department{dept}, []*Element{elem}, tasks)

	require.Len(t, snap.Groups, 1)
	g := snap.Groups[0]
	require.NotNil(t, g.Element.StartDate)
	require.NotNil(t, g.Element.DueDate)
	assert.Equal(t, date(2024, 1, 2), *g.Element.StartDate)
	assert.Equal(t, date(2024, 1, 12), *g.Element.DueDate)

	// Source element is untouched.
	assert.Nil(t, elem.StartDate)
	assert.Nil(t, elem.DueDate)
}

func TestBuildSnapshot_KeepsExplicitElementDates(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Engineering"}
	elem := &Element{
		ID: "e1", DepartmentID: "d1",
		StartDate: datePtr(2024, 3, 1), DueDate: datePtr(2024, 3, 31),
	}
	tasks := []*Task{
		{ID: "t1", ElementID: "e1", StartDate: datePtr(2024, 3, 5), DueDate: datePtr(2024, 3, 7)},
	}

	snap := BuildSnapshot([]*Department{dept}, []*Element{elem}, tasks)

	g := snap.Groups[0]
	assert.Equal(t, date(2024, 3, 1), *g.Element.StartDate)
	assert.Equal(t, date(2024, 3, 31), *g.Element.DueDate)
}

func TestBuildSnapshot_SingleDateTaskBecomesOneDayInterval(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Design"}
	elem := &Element{ID: "e1", DepartmentID: "d1"}
	tasks := []*Task{
		{ID: "t1", ElementID: "e1", DueDate: datePtr(2024, 2, 14)},
	}

	snap := BuildSnapshot([]*Department{dept}, []*Element{elem}, tasks)

	g := snap.Groups[0]
	require.Len(t, g.Tasks, 1)
	require.True(t, g.Tasks[0].HasInterval())
	assert.Equal(t, date(2024, 2, 14), *g.Tasks[0].StartDate)
	assert.Equal(t, date(2024, 2, 14), *g.Tasks[0].DueDate)
}

func TestBuildSnapshot_InvertedIntervalTreatedAsUndated(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Design"}
	elem := &Element{ID: "e1", DepartmentID: "d1"}
	tasks := []*Task{
		{ID: "t1", ElementID: "e1", StartDate: datePtr(2024, 2, 20), DueDate: datePtr(2024, 2, 10)},
	}

	snap := BuildSnapshot([]*Department{dept}, []*Element{elem}, tasks)

	g := snap.Groups[0]
	require.Len(t, g.Tasks, 1)
	assert.False(t, g.Tasks[0].HasInterval())
}

func TestBuildSnapshot_UngroupedPseudoElement(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Marketing"}
	tasks := []*Task{
		{ID: "t1", DepartmentID: "d1", StartDate: datePtr(2024, 1, 3), DueDate: datePtr(2024, 1, 4)},
		{ID: "t2", DepartmentID: "d1"}, // undated and unassigned: dropped
	}

	snap := BuildSnapshot([]*Department{dept}, nil, tasks)

	require.Len(t, snap.Groups, 1)
	g := snap.Groups[0]
	assert.True(t, g.Synthetic)
	assert.Equal(t, "Marketing Tasks", g.Element.Title)
	assert.Equal(t, "d1", g.Element.DepartmentID)
	require.Len(t, g.Tasks, 1)
	assert.Equal(t, "t1", g.Tasks[0].ID)

	// Pseudo-element derives its interval from its tasks.
	require.True(t, g.Element.HasInterval())
	assert.Equal(t, date(2024, 1, 3), *g.Element.StartDate)
	assert.Equal(t, date(2024, 1, 4), *g.Element.DueDate)
}

func TestBuildSnapshot_TruncatesTimeOfDay(t *testing.T) {
	dept := &Department{ID: "d1", Name: "Ops"}
	elem := &Element{ID: "e1", DepartmentID: "d1"}
	start := time.Date(2024, 5, 1, 17, 45, 3, 0, time.UTC)
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	tasks := []*Task{
		{ID: "t1", ElementID: "e1", StartDate: &start, DueDate: &due},
	}

	snap := BuildSnapshot([]*Department{dept}, []*Element{elem}, tasks)

	task := snap.Groups[0].Tasks[0]
	assert.Equal(t, date(2024, 5, 1), *task.StartDate)
	assert.Equal(t, date(2024, 5, 2), *task.DueDate)
}

func TestGroupsByDepartment(t *testing.T) {
	depts := []*Department{{ID: "d1", Name: "A"}, {ID: "d2", Name: "B"}}
	elems := []*Element{
		{ID: "e1", DepartmentID: "d1"},
		{ID: "e2", DepartmentID: "d2"},
		{ID: "e3", DepartmentID: "d1"},
	}

	snap := BuildSnapshot(depts, elems, nil)

	d1 := snap.GroupsByDepartment("d1")
	require.Len(t, d1, 2)
	assert.Equal(t, "e1", d1[0].Element.ID)
	assert.Equal(t, "e3", d1[1].Element.ID)
	assert.Len(t, snap.GroupsByDepartment("d2"), 1)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, 4, DaysBetween(date(2024, 1, 1), date(2024, 1, 5)))
	assert.Equal(t, -4, DaysBetween(date(2024, 1, 5), date(2024, 1, 1)))
	// Time-of-day is ignored.
	a := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}
