package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

type projectService struct {
	projects repository.ProjectRepo
	phases   repository.PhaseRepo
	works    repository.WorkRepo
	tasks    repository.TaskRepo
	todos    repository.TodoRepo
	obs      UseCaseObserver
}

func NewProjectService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	works repository.WorkRepo,
	tasks repository.TaskRepo,
	todos repository.TodoRepo,
	obs UseCaseObserver,
) ProjectService {
	return &projectService{
		projects: projects,
		phases:   phases,
		works:    works,
		tasks:    tasks,
		todos:    todos,
		obs:      observerOrNoop(obs),
	}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	started := time.Now()

	if strings.TrimSpace(in.Name) == "" {
		return nil, validationErr("name", "must not be empty")
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     in.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.projects.Create(ctx, p)
	observe(ctx, s.obs, "project.create", started, err, map[string]any{"project_id": p.ID})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// List returns project summaries with progress rolled up from the full
// hierarchy. Progress is recomputed on every read; nothing is cached.
func (s *projectService) List(ctx context.Context, includeArchived bool) ([]view.ProjectSummary, error) {
	projects, err := s.projects.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	summaries := make([]view.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		phases, err := s.phases.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading phases for %s: %w", p.ID, err)
		}
		works, err := s.works.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading works for %s: %w", p.ID, err)
		}
		tasks, err := s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading tasks for %s: %w", p.ID, err)
		}
		todos, err := s.todos.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("loading todos for %s: %w", p.ID, err)
		}

		tree := assembleTree(phases, works, tasks, todos)
		summaries = append(summaries, view.ProjectSummary{
			Project:    view.NewProject(p),
			Progress:   projectProgress(tree),
			PhaseCount: len(phases),
			WorkCount:  len(works),
			TaskCount:  len(tasks),
			TodoCount:  len(todos),
		})
	}
	return summaries, nil
}

func (s *projectService) Patch(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	started := time.Now()

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = domain.MergeString(p.Name, patch.Name)
	if strings.TrimSpace(p.Name) == "" {
		return nil, validationErr("name", "must not be empty")
	}
	p.Description = domain.MergeString(p.Description, patch.Description)
	p.OwnerID = domain.MergeString(p.OwnerID, patch.OwnerID)
	p.Archived = domain.MergeBool(p.Archived, patch.Archived)
	p.UpdatedAt = time.Now().UTC()

	err = s.projects.Update(ctx, p)
	observe(ctx, s.obs, "project.patch", started, err, map[string]any{"project_id": id})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	started := time.Now()

	// Verify existence so a bogus id surfaces as 404, not a silent no-op.
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.projects.Delete(ctx, id)
	observe(ctx, s.obs, "project.delete", started, err, map[string]any{"project_id": id})
	return err
}
