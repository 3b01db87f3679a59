package repository

import (
	"context"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
)

// TodayFilter narrows the today-todo listing. Zero values mean "no filter".
type TodayFilter struct {
	AssigneeID string
	Status     domain.Status
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error)
	NextOrderIndex(ctx context.Context, projectID string) (int, error)
	Update(ctx context.Context, p *domain.Phase) error
	SetOrderIndex(ctx context.Context, id string, idx int) error
	Delete(ctx context.Context, id string) error
}

type WorkRepo interface {
	Create(ctx context.Context, w *domain.Work) error
	GetByID(ctx context.Context, id string) (*domain.Work, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Work, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Work, error)
	NextOrderIndex(ctx context.Context, phaseID string) (int, error)
	Update(ctx context.Context, w *domain.Work) error
	SetOrderIndex(ctx context.Context, id string, idx int) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListByWork(ctx context.Context, workID string) ([]*domain.Task, error)
	NextOrderIndex(ctx context.Context, workID string) (int, error)
	Update(ctx context.Context, t *domain.Task) error
	SetOrderIndex(ctx context.Context, id string, idx int) error
	Delete(ctx context.Context, id string) error
}

type TodoRepo interface {
	Create(ctx context.Context, t *domain.Todo) error
	GetByID(ctx context.Context, id string) (*domain.Todo, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Todo, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.Todo, error)
	ListToday(ctx context.Context, projectID string, day string, filter TodayFilter) ([]*domain.Todo, error)
	NextOrderIndex(ctx context.Context, taskID string) (int, error)
	Update(ctx context.Context, t *domain.Todo) error
	SetOrderIndex(ctx context.Context, id string, idx int) error
	Delete(ctx context.Context, id string) error
}
