package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// workColumns is the canonical SELECT column list for works.
const workColumns = `id, project_id, phase_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at`

// SQLiteWorkRepo implements WorkRepo over a SQLite connection or transaction.
type SQLiteWorkRepo struct {
	db db.DBTX
}

// NewSQLiteWorkRepo creates a new SQLiteWorkRepo.
func NewSQLiteWorkRepo(conn db.DBTX) *SQLiteWorkRepo {
	return &SQLiteWorkRepo{db: conn}
}

func (r *SQLiteWorkRepo) Create(ctx context.Context, w *domain.Work) error {
	query := `INSERT INTO works (id, project_id, phase_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.ProjectID,
		w.PhaseID,
		w.Title,
		nullableTimeToString(w.PlannedStart, dateLayout),
		nullableTimeToString(w.PlannedEnd, dateLayout),
		nullableTimeToString(w.ActualStart, dateLayout),
		nullableTimeToString(w.ActualEnd, dateLayout),
		w.OrderIndex,
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work: %w", err)
	}
	return nil
}

func (r *SQLiteWorkRepo) GetByID(ctx context.Context, id string) (*domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works WHERE id = ?`
	return r.scanWork(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteWorkRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works WHERE project_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing works by project: %w", err)
	}
	defer rows.Close()
	return r.scanWorks(rows)
}

func (r *SQLiteWorkRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works WHERE phase_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, phaseID)
	if err != nil {
		return nil, fmt.Errorf("listing works by phase: %w", err)
	}
	defer rows.Close()
	return r.scanWorks(rows)
}

// NextOrderIndex returns MAX(order_index)+1 within the phase scope.
func (r *SQLiteWorkRepo) NextOrderIndex(ctx context.Context, phaseID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM works WHERE phase_id = ?`
	if err := r.db.QueryRowContext(ctx, query, phaseID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next work order index: %w", err)
	}
	return next, nil
}

func (r *SQLiteWorkRepo) Update(ctx context.Context, w *domain.Work) error {
	query := `UPDATE works SET title = ?, planned_start = ?, planned_end = ?,
		actual_start = ?, actual_end = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.Title,
		nullableTimeToString(w.PlannedStart, dateLayout),
		nullableTimeToString(w.PlannedEnd, dateLayout),
		nullableTimeToString(w.ActualStart, dateLayout),
		nullableTimeToString(w.ActualEnd, dateLayout),
		w.OrderIndex,
		w.UpdatedAt.Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work: %w", err)
	}
	return nil
}

func (r *SQLiteWorkRepo) SetOrderIndex(ctx context.Context, id string, idx int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE works SET order_index = ? WHERE id = ?`, idx, id); err != nil {
		return fmt.Errorf("setting work order index: %w", err)
	}
	return nil
}

func (r *SQLiteWorkRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM works WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting work: %w", err)
	}
	return nil
}

func (r *SQLiteWorkRepo) scanWork(row *sql.Row) (*domain.Work, error) {
	var w domain.Work
	var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&w.ID, &w.ProjectID, &w.PhaseID, &w.Title, &plannedStart, &plannedEnd,
		&actualStart, &actualEnd, &w.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("work: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning work: %w", err)
	}
	return r.populateWork(&w, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
}

func (r *SQLiteWorkRepo) scanWorks(rows *sql.Rows) ([]*domain.Work, error) {
	var works []*domain.Work
	for rows.Next() {
		var w domain.Work
		var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&w.ID, &w.ProjectID, &w.PhaseID, &w.Title, &plannedStart, &plannedEnd,
			&actualStart, &actualEnd, &w.OrderIndex, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning work row: %w", err)
		}
		work, err := r.populateWork(&w, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		works = append(works, work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating works: %w", err)
	}
	return works, nil
}

func (r *SQLiteWorkRepo) populateWork(
	w *domain.Work,
	plannedStart, plannedEnd, actualStart, actualEnd sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Work, error) {
	w.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	w.PlannedEnd = parseNullableTime(plannedEnd, dateLayout)
	w.ActualStart = parseNullableTime(actualStart, dateLayout)
	w.ActualEnd = parseNullableTime(actualEnd, dateLayout)

	var parseErr error
	w.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	w.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return w, nil
}
