package service

import (
	"context"
	"fmt"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/view"
)

type hierarchyService struct {
	projects repository.ProjectRepo
	phases   repository.PhaseRepo
	works    repository.WorkRepo
	tasks    repository.TaskRepo
	todos    repository.TodoRepo
}

func NewHierarchyService(
	projects repository.ProjectRepo,
	phases repository.PhaseRepo,
	works repository.WorkRepo,
	tasks repository.TaskRepo,
	todos repository.TodoRepo,
) HierarchyService {
	return &hierarchyService{
		projects: projects,
		phases:   phases,
		works:    works,
		tasks:    tasks,
		todos:    todos,
	}
}

// Hierarchy loads all rows for one project, one flat query per level, and
// reshapes them into the nested tree. Parent existence is checked first so a
// missing project fails fast with NotFound instead of returning an empty
// tree.
func (s *hierarchyService) Hierarchy(ctx context.Context, projectID string) (*view.Hierarchy, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	phases, err := s.phases.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}
	works, err := s.works.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading works: %w", err)
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	todos, err := s.todos.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading todos: %w", err)
	}

	return &view.Hierarchy{
		Project: view.NewProject(project),
		Phases:  assembleTree(phases, works, tasks, todos),
	}, nil
}
