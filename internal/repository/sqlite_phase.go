package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// phaseColumns is the canonical SELECT column list for phases.
const phaseColumns = `id, project_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at`

// SQLitePhaseRepo implements PhaseRepo over a SQLite connection or transaction.
type SQLitePhaseRepo struct {
	db db.DBTX
}

// NewSQLitePhaseRepo creates a new SQLitePhaseRepo.
func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: conn}
}

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (id, project_id, title, planned_start, planned_end,
		actual_start, actual_end, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		p.Title,
		nullableTimeToString(p.PlannedStart, dateLayout),
		nullableTimeToString(p.PlannedEnd, dateLayout),
		nullableTimeToString(p.ActualStart, dateLayout),
		nullableTimeToString(p.ActualEnd, dateLayout),
		p.OrderIndex,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE id = ?`
	return r.scanPhase(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE project_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing phases by project: %w", err)
	}
	defer rows.Close()
	return r.scanPhases(rows)
}

// NextOrderIndex returns MAX(order_index)+1 within the project scope.
func (r *SQLitePhaseRepo) NextOrderIndex(ctx context.Context, projectID string) (int, error) {
	var next int
	query := `SELECT COALESCE(MAX(order_index), 0) + 1 FROM phases WHERE project_id = ?`
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&next); err != nil {
		return 0, fmt.Errorf("computing next phase order index: %w", err)
	}
	return next, nil
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	query := `UPDATE phases SET title = ?, planned_start = ?, planned_end = ?,
		actual_start = ?, actual_end = ?, order_index = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Title,
		nullableTimeToString(p.PlannedStart, dateLayout),
		nullableTimeToString(p.PlannedEnd, dateLayout),
		nullableTimeToString(p.ActualStart, dateLayout),
		nullableTimeToString(p.ActualEnd, dateLayout),
		p.OrderIndex,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) SetOrderIndex(ctx context.Context, id string, idx int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE phases SET order_index = ? WHERE id = ?`, idx, id); err != nil {
		return fmt.Errorf("setting phase order index: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) scanPhase(row *sql.Row) (*domain.Phase, error) {
	var p domain.Phase
	var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Title, &plannedStart, &plannedEnd,
		&actualStart, &actualEnd, &p.OrderIndex, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("phase: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}
	return r.populatePhase(&p, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
}

func (r *SQLitePhaseRepo) scanPhases(rows *sql.Rows) ([]*domain.Phase, error) {
	var phases []*domain.Phase
	for rows.Next() {
		var p domain.Phase
		var plannedStart, plannedEnd, actualStart, actualEnd sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&p.ID, &p.ProjectID, &p.Title, &plannedStart, &plannedEnd,
			&actualStart, &actualEnd, &p.OrderIndex, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning phase row: %w", err)
		}
		phase, err := r.populatePhase(&p, plannedStart, plannedEnd, actualStart, actualEnd, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		phases = append(phases, phase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

func (r *SQLitePhaseRepo) populatePhase(
	p *domain.Phase,
	plannedStart, plannedEnd, actualStart, actualEnd sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Phase, error) {
	p.PlannedStart = parseNullableTime(plannedStart, dateLayout)
	p.PlannedEnd = parseNullableTime(plannedEnd, dateLayout)
	p.ActualStart = parseNullableTime(actualStart, dateLayout)
	p.ActualEnd = parseNullableTime(actualEnd, dateLayout)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
