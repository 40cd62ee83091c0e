package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/google/uuid"
)

type elementService struct {
	departments repository.DepartmentRepo
	elements    repository.ElementRepo
}

func NewElementService(departments repository.DepartmentRepo, elements repository.ElementRepo) ElementService {
	return &elementService{departments: departments, elements: elements}
}

func (s *elementService) Create(ctx context.Context, e *domain.Element) error {
	if _, err := s.departments.GetByID(ctx, e.DepartmentID); err != nil {
		return fmt.Errorf("resolving department: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Priority == "" {
		e.Priority = domain.PriorityMedium
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.elements.Create(ctx, e)
}

func (s *elementService) GetByID(ctx context.Context, id string) (*domain.Element, error) {
	return s.elements.GetByID(ctx, id)
}

func (s *elementService) List(ctx context.Context) ([]*domain.Element, error) {
	return s.elements.List(ctx)
}

func (s *elementService) ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Element, error) {
	return s.elements.ListByDepartment(ctx, departmentID)
}

func (s *elementService) Update(ctx context.Context, e *domain.Element) error {
	e.UpdatedAt = time.Now().UTC()
	return s.elements.Update(ctx, e)
}

func (s *elementService) Delete(ctx context.Context, id string) error {
	return s.elements.Delete(ctx, id)
}
