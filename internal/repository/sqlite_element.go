package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
)

const elementColumns = `id, department_id, title, start_date, due_date, priority, created_at, updated_at`

// SQLiteElementRepo implements ElementRepo using a SQLite database.
type SQLiteElementRepo struct {
	db db.DBTX
}

// NewSQLiteElementRepo creates a new SQLiteElementRepo.
func NewSQLiteElementRepo(conn db.DBTX) *SQLiteElementRepo {
	return &SQLiteElementRepo{db: conn}
}

func (r *SQLiteElementRepo) Create(ctx context.Context, e *domain.Element) error {
	query := `INSERT INTO elements (id, department_id, title, start_date, due_date, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.DepartmentID,
		e.Title,
		nullableTimeToString(e.StartDate, dateLayout),
		nullableTimeToString(e.DueDate, dateLayout),
		string(e.Priority),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting element: %w", err)
	}
	return nil
}

func (r *SQLiteElementRepo) GetByID(ctx context.Context, id string) (*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanElement(row)
}

func (r *SQLiteElementRepo) List(ctx context.Context) ([]*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing elements: %w", err)
	}
	defer rows.Close()
	return r.scanElements(rows)
}

func (r *SQLiteElementRepo) ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE department_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("listing elements by department: %w", err)
	}
	defer rows.Close()
	return r.scanElements(rows)
}

func (r *SQLiteElementRepo) Update(ctx context.Context, e *domain.Element) error {
	query := `UPDATE elements SET department_id = ?, title = ?, start_date = ?, due_date = ?, priority = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.DepartmentID,
		e.Title,
		nullableTimeToString(e.StartDate, dateLayout),
		nullableTimeToString(e.DueDate, dateLayout),
		string(e.Priority),
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating element: %w", err)
	}
	return nil
}

func (r *SQLiteElementRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM elements WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting element: %w", err)
	}
	return nil
}

// scanElement scans a single element row from a *sql.Row.
func (r *SQLiteElementRepo) scanElement(row *sql.Row) (*domain.Element, error) {
	var e domain.Element
	var priorityStr, createdAtStr, updatedAtStr string
	var startDateStr, dueDateStr sql.NullString

	err := row.Scan(
		&e.ID, &e.DepartmentID, &e.Title,
		&startDateStr, &dueDateStr,
		&priorityStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("element: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning element: %w", err)
	}

	e.Priority = domain.Priority(priorityStr)
	e.StartDate = parseNullableTime(startDateStr, dateLayout)
	e.DueDate = parseNullableTime(dueDateStr, dateLayout)
	if err := parseTimestamps(&e.CreatedAt, &e.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}

// scanElements scans multiple element rows from *sql.Rows.
func (r *SQLiteElementRepo) scanElements(rows *sql.Rows) ([]*domain.Element, error) {
	var elements []*domain.Element
	for rows.Next() {
		var e domain.Element
		var priorityStr, createdAtStr, updatedAtStr string
		var startDateStr, dueDateStr sql.NullString

		err := rows.Scan(
			&e.ID, &e.DepartmentID, &e.Title,
			&startDateStr, &dueDateStr,
			&priorityStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning element row: %w", err)
		}

		e.Priority = domain.Priority(priorityStr)
		e.StartDate = parseNullableTime(startDateStr, dateLayout)
		e.DueDate = parseNullableTime(dueDateStr, dateLayout)
		if err := parseTimestamps(&e.CreatedAt, &e.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		elements = append(elements, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elements: %w", err)
	}
	return elements, nil
}
