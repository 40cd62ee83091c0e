package service

import (
	"testing"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/testutil"
)

func setupRepos(t *testing.T) (
	repository.DepartmentRepo,
	repository.ElementRepo,
	repository.TaskRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteDepartmentRepo(database),
		repository.NewSQLiteElementRepo(database),
		repository.NewSQLiteTaskRepo(database),
		testutil.NewTestUoW(database)
}
