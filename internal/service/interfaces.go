package service

import (
	"context"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/importer"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	OwnerID     string
}

// CreatePlanItemInput carries the fields accepted when creating a phase,
// work or task under a verified parent. Dates are calendar-day strings;
// empty means unset.
type CreatePlanItemInput struct {
	Title        string
	PlannedStart string
	PlannedEnd   string
	ActualStart  string
	ActualEnd    string
}

// CreateTodoInput carries the fields accepted when creating a todo.
type CreateTodoInput struct {
	Title        string
	Status       string
	AssigneeID   string
	DueDate      string
	Memo         string
	ReferenceURL string
	Today        bool
}

// TodayQuery narrows the today-todo listing.
type TodayQuery struct {
	AssigneeID string
	Status     string
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]view.ProjectSummary, error)
	Patch(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type PhaseService interface {
	Create(ctx context.Context, projectID string, in CreatePlanItemInput) (*domain.Phase, error)
	Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Phase, error)
	Delete(ctx context.Context, id string) error
}

type WorkService interface {
	Create(ctx context.Context, projectID, phaseID string, in CreatePlanItemInput) (*domain.Work, error)
	Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Work, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, projectID, workID string, in CreatePlanItemInput) (*domain.Task, error)
	Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TodoService interface {
	Create(ctx context.Context, projectID, taskID string, in CreateTodoInput) (*domain.Todo, error)
	Patch(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
	ListToday(ctx context.Context, projectID string, q TodayQuery) ([]view.TodoNode, error)
}

type HierarchyService interface {
	Hierarchy(ctx context.Context, projectID string) (*view.Hierarchy, error)
}

type ReorderService interface {
	Reorder(ctx context.Context, scope domain.ScopeType, ids []string) error
}

type ImportService interface {
	Import(ctx context.Context, schema *importer.PlanSchema) (*domain.Project, error)
}
