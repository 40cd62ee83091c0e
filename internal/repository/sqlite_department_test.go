package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/tempus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDepartmentRepo(db)
	ctx := context.Background()

	dept := testutil.NewTestDepartment("Engineering")
	require.NoError(t, repo.Create(ctx, dept))

	fetched, err := repo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, dept.ID, fetched.ID)
	assert.Equal(t, "Engineering", fetched.Name)
	assert.WithinDuration(t, dept.CreatedAt, fetched.CreatedAt, time.Second)
}

func TestDepartmentRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDepartmentRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDepartmentRepo_List_OrderedByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDepartmentRepo(db)
	ctx := context.Background()

	d1 := testutil.NewTestDepartment("Engineering")
	d2 := testutil.NewTestDepartment("Design")
	d2.CreatedAt = d1.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, d1))
	require.NoError(t, repo.Create(ctx, d2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, d1.ID, list[0].ID)
	assert.Equal(t, d2.ID, list[1].ID)
}

func TestDepartmentRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDepartmentRepo(db)
	ctx := context.Background()

	dept := testutil.NewTestDepartment("Engineering")
	require.NoError(t, repo.Create(ctx, dept))

	dept.Name = "Platform Engineering"
	dept.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, dept))

	fetched, err := repo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineering", fetched.Name)
}

func TestDepartmentRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDepartmentRepo(db)
	ctx := context.Background()

	dept := testutil.NewTestDepartment("Engineering")
	require.NoError(t, repo.Create(ctx, dept))
	require.NoError(t, repo.Delete(ctx, dept.ID))

	_, err := repo.GetByID(ctx, dept.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
