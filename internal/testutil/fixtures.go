package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// Date builds a UTC midnight time for fixture dates.
func Date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// NewTestProject builds a project with sensible defaults.
func NewTestProject(name string, opts ...func(*domain.Project)) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   "owner-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithOwner sets the project owner reference.
func WithOwner(ownerID string) func(*domain.Project) {
	return func(p *domain.Project) { p.OwnerID = ownerID }
}

// WithArchived marks the project archived.
func WithArchived() func(*domain.Project) {
	return func(p *domain.Project) { p.Archived = true }
}

// NewTestPhase builds a phase under the given project.
func NewTestPhase(projectID, title string, orderIndex int, opts ...func(*domain.Phase)) *domain.Phase {
	now := time.Now().UTC()
	p := &domain.Phase{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithPhaseDates sets planned and actual dates on a phase. Nil pointers are
// left unset.
func WithPhaseDates(plannedStart, plannedEnd, actualStart, actualEnd *time.Time) func(*domain.Phase) {
	return func(p *domain.Phase) {
		p.PlannedStart = plannedStart
		p.PlannedEnd = plannedEnd
		p.ActualStart = actualStart
		p.ActualEnd = actualEnd
	}
}

// NewTestWork builds a work under the given phase.
func NewTestWork(projectID, phaseID, title string, orderIndex int, opts ...func(*domain.Work)) *domain.Work {
	now := time.Now().UTC()
	w := &domain.Work{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		PhaseID:    phaseID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WithWorkDates sets planned and actual dates on a work.
func WithWorkDates(plannedStart, plannedEnd, actualStart, actualEnd *time.Time) func(*domain.Work) {
	return func(w *domain.Work) {
		w.PlannedStart = plannedStart
		w.PlannedEnd = plannedEnd
		w.ActualStart = actualStart
		w.ActualEnd = actualEnd
	}
}

// NewTestTask builds a task under the given work.
func NewTestTask(projectID, workID, title string, orderIndex int, opts ...func(*domain.Task)) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		WorkID:     workID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// WithTaskDates sets planned and actual dates on a task.
func WithTaskDates(plannedStart, plannedEnd, actualStart, actualEnd *time.Time) func(*domain.Task) {
	return func(t *domain.Task) {
		t.PlannedStart = plannedStart
		t.PlannedEnd = plannedEnd
		t.ActualStart = actualStart
		t.ActualEnd = actualEnd
	}
}

// NewTestTodo builds a todo under the given task.
func NewTestTodo(projectID, taskID, title string, orderIndex int, opts ...func(*domain.Todo)) *domain.Todo {
	now := time.Now().UTC()
	td := &domain.Todo{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		TaskID:     taskID,
		Title:      title,
		Status:     domain.StatusNotStarted,
		OrderIndex: orderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(td)
	}
	return td
}

// WithTodoStatus sets the stored todo status.
func WithTodoStatus(s domain.Status) func(*domain.Todo) {
	return func(t *domain.Todo) { t.Status = s }
}

// WithTodoDue sets the todo due date.
func WithTodoDue(d *time.Time) func(*domain.Todo) {
	return func(t *domain.Todo) { t.DueDate = d }
}

// WithTodoToday flags the todo for today.
func WithTodoToday() func(*domain.Todo) {
	return func(t *domain.Todo) { t.Today = true }
}

// WithTodoAssignee sets the assignee reference.
func WithTodoAssignee(id string) func(*domain.Todo) {
	return func(t *domain.Todo) { t.AssigneeID = id }
}
