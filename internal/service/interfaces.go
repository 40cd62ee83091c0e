package service

import (
	"context"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/alexanderramin/tempus/internal/domain"
)

type DepartmentService interface {
	Create(ctx context.Context, d *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) error
	Delete(ctx context.Context, id string) error
}

type ElementService interface {
	Create(ctx context.Context, e *domain.Element) error
	GetByID(ctx context.Context, id string) (*domain.Element, error)
	List(ctx context.Context) ([]*domain.Element, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Element, error)
	Update(ctx context.Context, e *domain.Element) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByElement(ctx context.Context, elementID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TimelineService interface {
	BuildTimeline(ctx context.Context, req contract.TimelineRequest) (*contract.TimelineResponse, error)
	GetAnalytics(ctx context.Context, req contract.TimelineRequest) ([]contract.DepartmentAnalyticsView, error)
}

// SeedResult holds the outcome of demo-data seeding.
type SeedResult struct {
	DepartmentCount int
	ElementCount    int
	TaskCount       int
}

type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
