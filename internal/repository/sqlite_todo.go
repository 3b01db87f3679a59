package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// todoColumns is the canonical SELECT column list for todos.
const todoColumns = `id, project_id, task_id, title, status, assignee_id,
		due_date, memo, reference_url, today, order_index, created_at, updated_at`

// SQLiteTodoRepo implements TodoRepo over a SQLite connection or transaction.
type SQLiteTodoRepo struct {
	db db.DBTX
}

// NewSQLiteTodoRepo creates a new SQLiteTodoRepo.
func NewSQLiteTodoRepo(conn db.DBTX) *SQLiteTodoRepo {
	return &SQLiteTodoRepo{db: conn}
}

func (r *SQLiteTodoRepo) Create(ctx context.Context, t *domain.Todo) error {
	query := `INSERT INTO todos (id, project_id, task_id, title, status, assignee_id,
		due_date, memo, reference_url, today, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.TaskID,
		t.Title,
		string(t.Status),
		t.AssigneeID,
		nullableTimeToString(t.DueDate, dateLayout),
		t.Memo,
		t.ReferenceURL,
		boolToInt(t.Today),
		t.OrderIndex,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) GetByID(ctx context.Context, id string) (*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	return r.scanTodo(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTodoRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE project_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing todos by project: %w", err)
	}
	defer rows.Close()
	return r.scanTodos(rows)
}

func (r *SQLiteTodoRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE task_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing todos by task: %w", err)
	}
	defer rows.Close()
	return r.scanTodos(rows)
}

// ListToday returns todos due on the given calendar day (dateLayout format)
// or flagged for today, optionally narrowed by assignee and status.
func (r *SQLiteTodoRepo) ListToday(ctx context.Context, projectID string, day string, filter TodayFilter) ([]*domain.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos
		WHERE project_id = ? AND (due_date = ? OR today = 1)`
	args := []any{projectID, day}
	if filter.AssigneeID != "" {
		query += ` AND assignee_id = ?`
		args = append(args, filter.AssigneeID)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY order_index`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing today todos: %w", err)
	}
	defer rows.Close()
	return r.scanTodos(rows)
}

// NextOrderIndex returns MAX(order_index)+1 within the task scope.
func (r *SQLiteTodoRepo) NextOrderIndex(ctx context.Context, taskID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM todos WHERE task_id = ?`
	if err := r.db.QueryRowContext(ctx, query, taskID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next todo order index: %w", err)
	}
	return next, nil
}

func (r *SQLiteTodoRepo) Update(ctx context.Context, t *domain.Todo) error {
	query := `UPDATE todos SET title = ?, status = ?, assignee_id = ?, due_date = ?,
		memo = ?, reference_url = ?, today = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Status),
		t.AssigneeID,
		nullableTimeToString(t.DueDate, dateLayout),
		t.Memo,
		t.ReferenceURL,
		boolToInt(t.Today),
		t.OrderIndex,
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) SetOrderIndex(ctx context.Context, id string, idx int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE todos SET order_index = ? WHERE id = ?`, idx, id); err != nil {
		return fmt.Errorf("setting todo order index: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return nil
}

func (r *SQLiteTodoRepo) scanTodo(row *sql.Row) (*domain.Todo, error) {
	var t domain.Todo
	var statusStr string
	var dueDateStr sql.NullString
	var todayInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.ProjectID, &t.TaskID, &t.Title, &statusStr, &t.AssigneeID,
		&dueDateStr, &t.Memo, &t.ReferenceURL, &todayInt, &t.OrderIndex,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("todo: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}
	return r.populateTodo(&t, statusStr, dueDateStr, todayInt, createdAtStr, updatedAtStr)
}

func (r *SQLiteTodoRepo) scanTodos(rows *sql.Rows) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		var statusStr string
		var dueDateStr sql.NullString
		var todayInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.ProjectID, &t.TaskID, &t.Title, &statusStr, &t.AssigneeID,
			&dueDateStr, &t.Memo, &t.ReferenceURL, &todayInt, &t.OrderIndex,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todo, err := r.populateTodo(&t, statusStr, dueDateStr, todayInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return todos, nil
}

func (r *SQLiteTodoRepo) populateTodo(
	t *domain.Todo,
	statusStr string,
	dueDateStr sql.NullString,
	todayInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Todo, error) {
	t.Status = domain.Status(statusStr)
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	t.Today = intToBool(todayInt)

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
