package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
)

// SQLiteDepartmentRepo implements DepartmentRepo using a SQLite database.
type SQLiteDepartmentRepo struct {
	db db.DBTX
}

// NewSQLiteDepartmentRepo creates a new SQLiteDepartmentRepo.
func NewSQLiteDepartmentRepo(conn db.DBTX) *SQLiteDepartmentRepo {
	return &SQLiteDepartmentRepo{db: conn}
}

func (r *SQLiteDepartmentRepo) Create(ctx context.Context, d *domain.Department) error {
	query := `INSERT INTO departments (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting department: %w", err)
	}
	return nil
}

func (r *SQLiteDepartmentRepo) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	query := `SELECT id, name, created_at, updated_at FROM departments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var d domain.Department
	var createdAtStr, updatedAtStr string
	err := row.Scan(&d.ID, &d.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("department: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning department: %w", err)
	}
	if err := parseTimestamps(&d.CreatedAt, &d.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SQLiteDepartmentRepo) List(ctx context.Context) ([]*domain.Department, error) {
	query := `SELECT id, name, created_at, updated_at FROM departments ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	var departments []*domain.Department
	for rows.Next() {
		var d domain.Department
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&d.ID, &d.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning department row: %w", err)
		}
		if err := parseTimestamps(&d.CreatedAt, &d.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating departments: %w", err)
	}
	return departments, nil
}

func (r *SQLiteDepartmentRepo) Update(ctx context.Context, d *domain.Department) error {
	query := `UPDATE departments SET name = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.Name,
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating department: %w", err)
	}
	return nil
}

func (r *SQLiteDepartmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM departments WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	return nil
}
