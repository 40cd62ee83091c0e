package testutil

import (
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/google/uuid"
)

// Department options
type DepartmentOption func(*domain.Department)

func NewTestDepartment(name string, opts ...DepartmentOption) *domain.Department {
	now := time.Now().UTC()
	d := &domain.Department{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Element options
type ElementOption func(*domain.Element)

func WithElementDates(start, due time.Time) ElementOption {
	return func(e *domain.Element) {
		e.StartDate = &start
		e.DueDate = &due
	}
}

func WithPriority(p domain.Priority) ElementOption {
	return func(e *domain.Element) {
		e.Priority = p
	}
}

func NewTestElement(title, departmentID string, opts ...ElementOption) *domain.Element {
	now := time.Now().UTC()
	e := &domain.Element{
		ID:           uuid.New().String(),
		Title:        title,
		DepartmentID: departmentID,
		Priority:     domain.PriorityMedium,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskDates(start, due time.Time) TaskOption {
	return func(t *domain.Task) {
		t.StartDate = &start
		t.DueDate = &due
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithElementID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ElementID = id
	}
}

func WithAssignee(name string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = name
	}
}

func NewTestTask(title, departmentID string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:           uuid.New().String(),
		Title:        title,
		DepartmentID: departmentID,
		Status:       domain.TaskTodo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}
