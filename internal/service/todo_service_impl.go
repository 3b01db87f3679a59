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

type todoService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	todos    repository.TodoRepo
	obs      UseCaseObserver
	// now is swappable in tests so "today" is deterministic.
	now func() time.Time
}

func NewTodoService(projects repository.ProjectRepo, tasks repository.TaskRepo, todos repository.TodoRepo, obs UseCaseObserver) TodoService {
	return &todoService{
		projects: projects,
		tasks:    tasks,
		todos:    todos,
		obs:      observerOrNoop(obs),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *todoService) Create(ctx context.Context, projectID, taskID string, in CreateTodoInput) (*domain.Todo, error) {
	started := time.Now()

	if strings.TrimSpace(in.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	status := domain.StatusNotStarted
	if in.Status != "" {
		if !domain.ValidStatuses[in.Status] {
			return nil, validationErr("status", "must be one of NOT_STARTED, IN_PROGRESS, DONE")
		}
		status = domain.Status(in.Status)
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID != projectID {
		return nil, fmt.Errorf("task %s in project %s: %w", taskID, projectID, repository.ErrNotFound)
	}

	dueDate, err := parseDate("dueDate", in.DueDate)
	if err != nil {
		return nil, err
	}
	orderIndex, err := s.todos.NextOrderIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Todo{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		TaskID:       taskID,
		Title:        in.Title,
		Status:       status,
		AssigneeID:   in.AssigneeID,
		DueDate:      dueDate,
		Memo:         in.Memo,
		ReferenceURL: in.ReferenceURL,
		Today:        in.Today,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.todos.Create(ctx, t)
	observe(ctx, s.obs, "todo.create", started, err, map[string]any{"todo_id": t.ID, "task_id": taskID})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *todoService) Patch(ctx context.Context, id string, patch domain.TodoPatch) (*domain.Todo, error) {
	started := time.Now()

	t, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = domain.MergeString(t.Title, patch.Title)
	if strings.TrimSpace(t.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if patch.Status != nil {
		if !domain.ValidStatuses[*patch.Status] {
			return nil, validationErr("status", "must be one of NOT_STARTED, IN_PROGRESS, DONE")
		}
		t.Status = domain.Status(*patch.Status)
	}
	t.AssigneeID = domain.MergeString(t.AssigneeID, patch.AssigneeID)
	if t.DueDate, err = mergeDateField("dueDate", t.DueDate, patch.DueDate); err != nil {
		return nil, err
	}
	t.Memo = domain.MergeString(t.Memo, patch.Memo)
	t.ReferenceURL = domain.MergeString(t.ReferenceURL, patch.ReferenceURL)
	t.Today = domain.MergeBool(t.Today, patch.Today)
	t.UpdatedAt = time.Now().UTC()

	err = s.todos.Update(ctx, t)
	observe(ctx, s.obs, "todo.patch", started, err, map[string]any{"todo_id": id})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	started := time.Now()

	if _, err := s.todos.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.todos.Delete(ctx, id)
	observe(ctx, s.obs, "todo.delete", started, err, map[string]any{"todo_id": id})
	return err
}

// ListToday returns the todos due today or flagged for today within one
// project, optionally narrowed by assignee and status.
func (s *todoService) ListToday(ctx context.Context, projectID string, q TodayQuery) ([]view.TodoNode, error) {
	if q.Status != "" && !domain.ValidStatuses[q.Status] {
		return nil, validationErr("status", "must be one of NOT_STARTED, IN_PROGRESS, DONE")
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	day := s.now().Format(domain.DateLayout)
	todos, err := s.todos.ListToday(ctx, projectID, day, repository.TodayFilter{
		AssigneeID: q.AssigneeID,
		Status:     domain.Status(q.Status),
	})
	if err != nil {
		return nil, err
	}

	nodes := make([]view.TodoNode, 0, len(todos))
	for _, td := range todos {
		nodes = append(nodes, view.NewTodoNode(td))
	}
	return nodes, nil
}
