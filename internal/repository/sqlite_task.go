package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, project_id, work_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo over a SQLite connection or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, project_id, work_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.WorkID,
		t.Title,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		nullableTimeToString(t.ActualStart, dateLayout),
		nullableTimeToString(t.ActualEnd, dateLayout),
		t.OrderIndex,
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
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by project: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByWork(ctx context.Context, workID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE work_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, workID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by work: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// NextOrderIndex returns MAX(order_index)+1 within the work scope.
func (r *SQLiteTaskRepo) NextOrderIndex(ctx context.Context, workID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM tasks WHERE work_id = ?`
	if err := r.db.QueryRowContext(ctx, query, workID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next task order index: %w", err)
	}
	return next, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, planned_start = ?, planned_end = ?,
		actual_start = ?, actual_end = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		nullableTimeToString(t.PlannedStart, dateLayout),
		nullableTimeToString(t.PlannedEnd, dateLayout),
		nullableTimeToString(t.ActualStart, dateLayout),
		nullableTimeToString(t.ActualEnd, dateLayout),
		t.OrderIndex,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetOrderIndex(ctx context.Context, id string, idx int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE tasks SET order_index = ? WHERE id = ?`, idx, id); err != nil {
		return fmt.Errorf("setting task order index: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.WorkID, &t.Title, &plannedStart, &plannedEnd,
		&actualStart, &actualEnd, &t.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return r.populateTask(&t, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.WorkID, &t.Title, &plannedStart, &plannedEnd,
			&actualStart, &actualEnd, &t.OrderIndex, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, err := r.populateTask(&t, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
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

func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	plannedStart, plannedEnd, actualStart, actualEnd sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	t.PlannedEnd = parseNullableTime(plannedEnd, dateLayout)
	t.ActualStart = parseNullableTime(actualStart, dateLayout)
	t.ActualEnd = parseNullableTime(actualEnd, dateLayout)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}
