package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	departments repository.DepartmentRepo
	elements    repository.ElementRepo
	tasks       repository.TaskRepo
}

func NewTaskService(
	departments repository.DepartmentRepo,
	elements repository.ElementRepo,
	tasks repository.TaskRepo,
) TaskService {
	return &taskService{departments: departments, elements: elements, tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	// A task assigned to an element inherits that element's department.
	if t.ElementID != "" {
		elem, err := s.elements.GetByID(ctx, t.ElementID)
		if err != nil {
			return fmt.Errorf("resolving element: %w", err)
		}
		t.DepartmentID = elem.DepartmentID
	} else if _, err := s.departments.GetByID(ctx, t.DepartmentID); err != nil {
		return fmt.Errorf("resolving department: %w", err)
	}

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByElement(ctx context.Context, elementID string) ([]*domain.Task, error) {
	return s.tasks.ListByElement(ctx, elementID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.Status = domain.TaskDone
	t.ProgressPct = 100
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
