package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
)

type phaseService struct {
	projects repository.ProjectRepo
	phases   repository.PhaseRepo
	obs      UseCaseObserver
}

func NewPhaseService(projects repository.ProjectRepo, phases repository.PhaseRepo, obs UseCaseObserver) PhaseService {
	return &phaseService{projects: projects, phases: phases, obs: observerOrNoop(obs)}
}

func (s *phaseService) Create(ctx context.Context, projectID string, in CreatePlanItemInput) (*domain.Phase, error) {
	started := time.Now()

	if strings.TrimSpace(in.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	// Fail fast before touching child rows.
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	plannedStart, plannedEnd, actualStart, actualEnd, err := parsePlanDates(in)
	if err != nil {
		return nil, err
	}
	orderIndex, err := s.phases.NextOrderIndex(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Phase{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Title:        in.Title,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		ActualStart:  actualStart,
		ActualEnd:    actualEnd,
		OrderIndex:   orderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.phases.Create(ctx, p)
	observe(ctx, s.obs, "phase.create", started, err, map[string]any{"phase_id": p.ID, "project_id": projectID})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *phaseService) Patch(ctx context.Context, id string, patch domain.PlanItemPatch) (*domain.Phase, error) {
	started := time.Now()

	p, err := s.phases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = domain.MergeString(p.Title, patch.Title)
	if strings.TrimSpace(p.Title) == "" {
		return nil, validationErr("title", "must not be empty")
	}
	if p.PlannedStart, err = mergeDateField("plannedStart", p.PlannedStart, patch.PlannedStart); err != nil {
		return nil, err
	}
	if p.PlannedEnd, err = mergeDateField("plannedEnd", p.PlannedEnd, patch.PlannedEnd); err != nil {
		return nil, err
	}
	if p.ActualStart, err = mergeDateField("actualStart", p.ActualStart, patch.ActualStart); err != nil {
		return nil, err
	}
	if p.ActualEnd, err = mergeDateField("actualEnd", p.ActualEnd, patch.ActualEnd); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	err = s.phases.Update(ctx, p)
	observe(ctx, s.obs, "phase.patch", started, err, map[string]any{"phase_id": id})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *phaseService) Delete(ctx context.Context, id string) error {
	started := time.Now()

	if _, err := s.phases.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.phases.Delete(ctx, id)
	observe(ctx, s.obs, "phase.delete", started, err, map[string]any{"phase_id": id})
	return err
}
