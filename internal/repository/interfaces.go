package repository

import (
	"context"

	"github.com/alexanderramin/tempus/internal/domain"
)

type DepartmentRepo interface {
	Create(ctx context.Context, d *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id string) error
}

type ElementRepo interface {
	Create(ctx context.Context, e *domain.Element) error
	GetByID(ctx context.Context, id string) (*domain.Element, error)
	List(ctx context.Context) ([]*domain.Element, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Element, error)
	Update(ctx context.Context, e *domain.Element) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByElement(ctx context.Context, elementID string) ([]*domain.Task, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
