package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
)

type taskService struct {
	works repository.WorkRepo
	tasks repository.TaskRepo
	obs   UseCaseObserver
}

func NewTaskService(works repository.WorkRepo, tasks repository.TaskRepo, obs UseCaseObserver) TaskService {
	return &taskService{works: works, tasks: tasks, obs: observerOrNoop(obs)}
}

func (s *taskService) Create(ctx context.Context, projectID, workID string, in CreatePlanItemInput) (*domain.Task, error) {
	started := time.Now()

	if strings.TrimSpace(in.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	work, err := s.works.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if work.ProjectID != projectID {
		return nil, fmt.Errorf("work %s in project %s: %w", workID, projectID, repository.ErrNotFound)
	}

	plannedStart, plannedEnd, actualStart, actualEnd, err := parsePlanDates(in)
	if err != nil {
		return nil, err
	}
	orderIndex, err := s.tasks.NextOrderIndex(ctx, workID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		WorkID:       workID,
		Title:        in.Title,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		ActualStart:  actualStart,
		ActualEnd:    actualEnd,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.tasks.Create(ctx, t)
	observe(ctx, s.obs, "task.create", started, err, map[string]any{"task_id": t.ID, "work_id": workID})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Task, error) {
	started := time.Now()

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = domain.MergeString(t.Title, patch.Title)
	if strings.TrimSpace(t.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if t.PlannedStart, err = mergeDateField("plannedStart", t.PlannedStart, patch.PlannedStart); err != nil {
		return nil, err
	}
	if t.PlannedEnd, err = mergeDateField("plannedEnd", t.PlannedEnd, patch.PlannedEnd); err != nil {
		return nil, err
	}
	if t.ActualStart, err = mergeDateField("actualStart", t.ActualStart, patch.ActualStart); err != nil {
		return nil, err
	}
	if t.ActualEnd, err = mergeDateField("actualEnd", t.ActualEnd, patch.ActualEnd); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().UTC()

	err = s.tasks.Update(ctx, t)
	observe(ctx, s.obs, "task.patch", started, err, map[string]any{"task_id": id})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	started := time.Now()

	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.tasks.Delete(ctx, id)
	observe(ctx, s.obs, "task.delete", started, err, map[string]any{"task_id": id})
	return err
}
