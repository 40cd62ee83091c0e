package timeline

import (
	"testing"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Departments: []*domain.Department{
			{ID: "d1", Name: "Engineering"},
			{ID: "d2", Name: "Design"},
		},
		Groups: []*domain.ElementGroup{
			makeGroup("e1", "d1",
				makeTask("t1", datePtr(2024, 1, 1), datePtr(2024, 1, 5), domain.TaskDone),
				makeTask("t2", datePtr(2024, 1, 3), datePtr(2024, 1, 8), domain.TaskTodo),
			),
			makeGroup("e2", "d2",
				makeTask("t3", datePtr(2024, 1, 2), datePtr(2024, 1, 4), domain.TaskInProgress),
			),
			makeGroup("e3", "d1",
				makeTask("t4", nil, nil, domain.TaskTodo), // undated only
			),
		},
	}
}

func TestFilterElements_All(t *testing.T) {
	snap := filterSnapshot()

	got := FilterElements(snap, domain.FilterAll, domain.FilterAll)

	// e3 drops: no dated task.
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].Element.ID)
	assert.Equal(t, "e2", got[1].Element.ID)
}

func TestFilterElements_ByDepartment(t *testing.T) {
	snap := filterSnapshot()

	got := FilterElements(snap, "d2", domain.FilterAll)

	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].Element.ID)
}

func TestFilterElements_ByStatusNarrowsTasks(t *testing.T) {
	snap := filterSnapshot()

	got := FilterElements(snap, domain.FilterAll, "done")

	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].Element.ID)
	require.Len(t, got[0].Tasks, 1)
	assert.Equal(t, "t1", got[0].Tasks[0].ID)
}

func TestFilterElements_NoMatchYieldsEmpty(t *testing.T) {
	snap := filterSnapshot()

	got := FilterElements(snap, "d2", "done")
	assert.Empty(t, got)
}

func TestFilterElements_DoesNotMutateSnapshot(t *testing.T) {
	snap := filterSnapshot()

	_ = FilterElements(snap, domain.FilterAll, "done")

	assert.Len(t, snap.Groups[0].Tasks, 2, "snapshot task lists stay intact")
}

func TestFilterElements_PreservesOrder(t *testing.T) {
	snap := filterSnapshot()

	got := FilterElements(snap, "d1", domain.FilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].Element.ID)
}
