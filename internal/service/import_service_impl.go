package service

import (
	"context"
	"strings"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/importer"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
	obs UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, obs UseCaseObserver) ImportService {
	return &importService{uow: uow, obs: observerOrNoop(obs)}
}

// Import validates a plan schema and persists the whole hierarchy in one
// transaction, so a failing row never leaves a half-imported project behind.
func (s *importService) Import(ctx context.Context, schema *importer.PlanSchema) (*domain.Project, error) {
	started := time.Now()

	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Error()
		}
		return nil, &ValidationError{Field: "plan", Message: strings.Join(messages, "; ")}
	}

	plan := importer.Convert(schema)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		phases := repository.NewSQLitePhaseRepo(tx)
		works := repository.NewSQLiteWorkRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		todos := repository.NewSQLiteTodoRepo(tx)

		if err := projects.Create(ctx, plan.Project); err != nil {
			return err
		}
		for _, p := range plan.Phases {
			if err := phases.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, w := range plan.Works {
			if err := works.Create(ctx, w); err != nil {
				return err
			}
		}
		for _, t := range plan.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return err
			}
		}
		for _, td := range plan.Todos {
			if err := todos.Create(ctx, td); err != nil {
				return err
			}
		}
		return nil
	})
	observe(ctx, s.obs, "project.import", started, err, map[string]any{
		"project_id": plan.Project.ID,
		"phases":     len(plan.Phases),
		"todos":      len(plan.Todos),
	})
	if err != nil {
		return nil, err
	}
	return plan.Project, nil
}
