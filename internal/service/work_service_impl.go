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

type workService struct {
	phases repository.PhaseRepo
	works  repository.WorkRepo
	obs    UseCaseObserver
}

func NewWorkService(phases repository.PhaseRepo, works repository.WorkRepo, obs UseCaseObserver) WorkService {
	return &workService{phases: phases, works: works, obs: observerOrNoop(obs)}
}

func (s *workService) Create(ctx context.Context, projectID, phaseID string, in CreatePlanItemInput) (*domain.Work, error) {
	started := time.Now()

	if strings.TrimSpace(in.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	phase, err := s.phases.GetByID(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	// A phase from another project does not resolve in this one.
	if phase.ProjectID != projectID {
		return nil, fmt.Errorf("phase %s in project %s: %w", phaseID, projectID, repository.ErrNotFound)
	}

	plannedStart, plannedEnd, actualStart, actualEnd, err := parsePlanDates(in)
	if err != nil {
		return nil, err
	}
	orderIndex, err := s.works.NextOrderIndex(ctx, phaseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := &domain.Work{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		PhaseID:      phaseID,
		Title:        in.Title,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		ActualStart:  actualStart,
		ActualEnd:    actualEnd,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.works.Create(ctx, w)
	observe(ctx, s.obs, "work.create", started, err, map[string]any{"work_id": w.ID, "phase_id": phaseID})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workService) Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Work, error) {
	started := time.Now()

	w, err := s.works.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Title = domain.MergeString(w.Title, patch.Title)
	if strings.TrimSpace(w.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if w.PlannedStart, err = mergeDateField("plannedStart", w.PlannedStart, patch.PlannedStart); err != nil {
		return nil, err
	}
	if w.PlannedEnd, err = mergeDateField("plannedEnd", w.PlannedEnd, patch.PlannedEnd); err != nil {
		return nil, err
	}
	if w.ActualStart, err = mergeDateField("actualStart", w.ActualStart, patch.ActualStart); err != nil {
		return nil, err
	}
	if w.ActualEnd, err = mergeDateField("actualEnd", w.ActualEnd, patch.ActualEnd); err != nil {
		return nil, err
	}
	w.UpdatedAt = time.Now().UTC()

	err = s.works.Update(ctx, w)
	observe(ctx, s.obs, "work.patch", started, err, map[string]any{"work_id": id})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *workService) Delete(ctx context.Context, id string) error {
	started := time.Now()

	if _, err := s.works.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.works.Delete(ctx, id)
	observe(ctx, s.obs, "work.delete", started, err, map[string]any{"work_id": id})
	return err
}
