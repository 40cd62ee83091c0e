package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/google/uuid"
)

type departmentService struct {
	departments repository.DepartmentRepo
}

func NewDepartmentService(departments repository.DepartmentRepo) DepartmentService {
	return &departmentService{departments: departments}
}

func (s *departmentService) Create(ctx context.Context, d *domain.Department) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.departments.Create(ctx, d)
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *departmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *departmentService) Update(ctx context.Context, d *domain.Department) error {
	d.UpdatedAt = time.Now().UTC()
	return s.departments.Update(ctx, d)
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	return s.departments.Delete(ctx, id)
}
