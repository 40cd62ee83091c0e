package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskFixtures(t *testing.T) (context.Context, *SQLiteTaskRepo, *domain.Department, *domain.Element) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	dept := testutil.NewTestDepartment("Engineering")
	require.NoError(t, NewSQLiteDepartmentRepo(db).Create(ctx, dept))
	elem := testutil.NewTestElement("Release", dept.ID)
	require.NoError(t, NewSQLiteElementRepo(db).Create(ctx, elem))

	return ctx, NewSQLiteTaskRepo(db), dept, elem
}

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	ctx, repo, dept, elem := taskFixtures(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Ship feature", dept.ID,
		testutil.WithElementID(elem.ID),
		testutil.WithTaskDates(start, due),
		testutil.WithStatus(domain.TaskInProgress),
		testutil.WithAssignee("morgan"),
	)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ship feature", fetched.Title)
	assert.Equal(t, elem.ID, fetched.ElementID)
	assert.Equal(t, domain.TaskInProgress, fetched.Status)
	assert.Equal(t, "morgan", fetched.Assignee)
	require.NotNil(t, fetched.StartDate)
	assert.Equal(t, start, *fetched.StartDate)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, due, *fetched.DueDate)
}

func TestTaskRepo_UnassignedTaskRoundTrip(t *testing.T) {
	ctx, repo, dept, _ := taskFixtures(t)

	task := testutil.NewTestTask("Floating", dept.ID)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.ElementID, "empty element id stores as NULL and reads back empty")
	assert.Nil(t, fetched.StartDate)
	assert.Nil(t, fetched.DueDate)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	ctx, repo, _, _ := taskFixtures(t)

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListByElementAndDepartment(t *testing.T) {
	ctx, repo, dept, elem := taskFixtures(t)

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("a", dept.ID, testutil.WithElementID(elem.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("b", dept.ID, testutil.WithElementID(elem.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("c", dept.ID)))

	byElem, err := repo.ListByElement(ctx, elem.ID)
	require.NoError(t, err)
	assert.Len(t, byElem, 2)

	byDept, err := repo.ListByDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Len(t, byDept, 3)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTaskRepo_Update(t *testing.T) {
	ctx, repo, dept, elem := taskFixtures(t)

	task := testutil.NewTestTask("Ship feature", dept.ID, testutil.WithElementID(elem.ID))
	require.NoError(t, repo.Create(ctx, task))

	task.Status = domain.TaskDone
	task.ProgressPct = 100
	task.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, fetched.Status)
	assert.Equal(t, 100, fetched.ProgressPct)
}

func TestTaskRepo_Delete(t *testing.T) {
	ctx, repo, dept, _ := taskFixtures(t)

	task := testutil.NewTestTask("Ship feature", dept.ID)
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
