package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/google/uuid"
)

type seedService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, observers ...UseCaseObserver) SeedService {
	return &seedService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

type seedTask struct {
	title      string
	startDelta int // days relative to the seed anchor
	dueDelta   int
	status     domain.TaskStatus
	assignee   string
	undated    bool
}

type seedElement struct {
	title string
	tasks []seedTask
}

type seedDepartment struct {
	name     string
	elements []seedElement
	loose    []seedTask // department-level tasks without an element
}

var seedPlan = []seedDepartment{
	{
		name: "Engineering",
		elements: []seedElement{
			{
				title: "API v2",
				tasks: []seedTask{
					{title: "Design review", startDelta: -10, dueDelta: -6, status: domain.TaskDone, assignee: "sam"},
					{title: "Implement endpoints", startDelta: -5, dueDelta: 4, status: domain.TaskInProgress, assignee: "sam"},
					{title: "Write docs", startDelta: 5, dueDelta: 9, status: domain.TaskTodo},
				},
			},
			{
				title: "Migration tooling",
				tasks: []seedTask{
					{title: "Schema diff tool", startDelta: -2, dueDelta: 6, status: domain.TaskInProgress, assignee: "alex"},
					{title: "Backfill script", startDelta: 7, dueDelta: 12, status: domain.TaskTodo},
				},
			},
		},
		loose: []seedTask{
			{title: "On-call rotation setup", startDelta: 1, dueDelta: 3, status: domain.TaskTodo, assignee: "alex"},
		},
	},
	{
		name: "Design",
		elements: []seedElement{
			{
				title: "Dashboard refresh",
				tasks: []seedTask{
					{title: "Wireframes", startDelta: -8, dueDelta: -3, status: domain.TaskDone, assignee: "kim"},
					{title: "High-fidelity mocks", startDelta: -2, dueDelta: 5, status: domain.TaskInProgress, assignee: "kim"},
					{title: "Usability notes", undated: true, status: domain.TaskTodo},
				},
			},
		},
	},
	{
		name: "Marketing",
	},
}

func (s *seedService) Seed(ctx context.Context) (result *SeedResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "seed",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	anchor := domain.DateOnly(time.Now().UTC())
	result = &SeedResult{}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		departments := repository.NewSQLiteDepartmentRepo(tx)
		elements := repository.NewSQLiteElementRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		now := time.Now().UTC()
		for _, sd := range seedPlan {
			dept := &domain.Department{
				ID:        uuid.New().String(),
				Name:      sd.name,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := departments.Create(ctx, dept); err != nil {
				return fmt.Errorf("seeding department %q: %w", sd.name, err)
			}
			result.DepartmentCount++

			for _, se := range sd.elements {
				elem := &domain.Element{
					ID:           uuid.New().String(),
					Title:        se.title,
					DepartmentID: dept.ID,
					Priority:     domain.PriorityMedium,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := elements.Create(ctx, elem); err != nil {
					return fmt.Errorf("seeding element %q: %w", se.title, err)
				}
				result.ElementCount++

				for _, st := range se.tasks {
					if err := tasks.Create(ctx, buildSeedTask(st, dept.ID, elem.ID, anchor, now)); err != nil {
						return fmt.Errorf("seeding task %q: %w", st.title, err)
					}
					result.TaskCount++
				}
			}

			for _, st := range sd.loose {
				if err := tasks.Create(ctx, buildSeedTask(st, dept.ID, "", anchor, now)); err != nil {
					return fmt.Errorf("seeding task %q: %w", st.title, err)
				}
				result.TaskCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func buildSeedTask(st seedTask, departmentID, elementID string, anchor, now time.Time) *domain.Task {
	t := &domain.Task{
		ID:           uuid.New().String(),
		Title:        st.title,
		ElementID:    elementID,
		DepartmentID: departmentID,
		Status:       st.status,
		Assignee:     st.assignee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if st.status == domain.TaskDone {
		t.ProgressPct = 100
	}
	if !st.undated {
		start := anchor.AddDate(0, 0, st.startDelta)
		due := anchor.AddDate(0, 0, st.dueDelta)
		t.StartDate = &start
		t.DueDate = &due
	}
	return t
}
