package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/domain"
)

const taskColumns = `id, element_id, department_id, title, start_date, due_date,
		status, progress_pct, assignee, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, element_id, department_id, title, start_date, due_date,
		status, progress_pct, assignee, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		nullableString(t.ElementID),
		t.DepartmentID,
		t.Title,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Status),
		t.ProgressPct,
		t.Assignee,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByElement(ctx context.Context, elementID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE element_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, elementID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by element: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByDepartment(ctx context.Context, departmentID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE department_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by department: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET element_id = ?, department_id = ?, title = ?, start_date = ?, due_date = ?,
		status = ?, progress_pct = ?, assignee = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		nullableString(t.ElementID),
		t.DepartmentID,
		t.Title,
		nullableTimeToString(t.StartDate, dateLayout),
		nullableTimeToString(t.DueDate, dateLayout),
		string(t.Status),
		t.ProgressPct,
		t.Assignee,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// scanTask scans a single task row from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var statusStr, createdAtStr, updatedAtStr string
	var elementIDStr, startDateStr, dueDateStr sql.NullString

	err := row.Scan(
		&t.ID, &elementIDStr, &t.DepartmentID, &t.Title,
		&startDateStr, &dueDateStr,
		&statusStr, &t.ProgressPct, &t.Assignee,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, statusStr, elementIDStr, startDateStr, dueDateStr, createdAtStr, updatedAtStr)
}

// scanTasks scans multiple task rows from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var statusStr, createdAtStr, updatedAtStr string
		var elementIDStr, startDateStr, dueDateStr sql.NullString

		err := rows.Scan(
			&t.ID, &elementIDStr, &t.DepartmentID, &t.Title,
			&startDateStr, &dueDateStr,
			&statusStr, &t.ProgressPct, &t.Assignee,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, statusStr, elementIDStr, startDateStr, dueDateStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	statusStr string,
	elementIDStr, startDateStr, dueDateStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Status = domain.TaskStatus(statusStr)
	if elementIDStr.Valid {
		t.ElementID = elementIDStr.String
	}
	t.StartDate = parseNullableTime(startDateStr, dateLayout)
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	if err := parseTimestamps(&t.CreatedAt, &t.UpdatedAt, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return t, nil
}
