package domain

import "time"

// Phase is the top planning level under a project.
// Status is never stored for planning items; call DerivedStatus.
type Phase struct {
	ID           string
	ProjectID    string
	Title        string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Phase) DerivedStatus() Status {
	return DeriveStatus(p.ActualStart, p.ActualEnd)
}

// Work is the middle planning level, scoped to a phase.
type Work struct {
	ID           string
	ProjectID    string
	PhaseID      string
	Title        string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (w *Work) DerivedStatus() Status {
	return DeriveStatus(w.ActualStart, w.ActualEnd)
}

// Task is the smallest planning level, scoped to a work. Its children are
// todos, whose statuses are stored rather than derived.
type Task struct {
	ID           string
	ProjectID    string
	WorkID       string
	Title        string
	PlannedStart *time.Time
	PlannedEnd   *time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time
	OrderIndex   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t *Task) DerivedStatus() Status {
	return DeriveStatus(t.ActualStart, t.ActualEnd)
}
