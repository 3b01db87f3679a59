package service

import (
	"context"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
)

type reorderService struct {
	phases repository.PhaseRepo
	works  repository.WorkRepo
	tasks  repository.TaskRepo
	todos  repository.TodoRepo
	uow    db.UnitOfWork
	obs    UseCaseObserver
}

func NewReorderService(
	phases repository.PhaseRepo,
	works repository.WorkRepo,
	tasks repository.TaskRepo,
	todos repository.TodoRepo,
	uow db.UnitOfWork,
	obs UseCaseObserver,
) ReorderService {
	return &reorderService{
		phases: phases,
		works:  works,
		tasks:  tasks,
		todos:  todos,
		uow:    uow,
		obs:    observerOrNoop(obs),
	}
}

// Reorder rewrites the full order-index sequence for one sibling scope.
// The id list must be a permutation of the scope's current members, and the
// rewrite happens inside a single transaction: a crash mid-way leaves either
// the old order or the new one, never a mix.
func (s *reorderService) Reorder(ctx context.Context, scope domain.ScopeType, ids []string) error {
	started := time.Now()

	if len(ids) == 0 {
		return validationErr("ids", "must not be empty")
	}
	if !domain.ValidScopeTypes[string(scope)] {
		return validationErr("type", "must be one of phase, work, task, todo")
	}

	siblingIDs, err := s.scopeSiblings(ctx, scope, ids[0])
	if err != nil {
		return err
	}
	if err := validatePermutation(ids, siblingIDs); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for i, id := range ids {
			if err := s.setOrderIndexTx(ctx, tx, scope, id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	observe(ctx, s.obs, "reorder", started, err, map[string]any{"scope": string(scope), "count": len(ids)})
	return err
}

// scopeSiblings resolves the anchor id and returns every sibling id in its
// parent scope, in current order.
func (s *reorderService) scopeSiblings(ctx context.Context, scope domain.ScopeType, anchorID string) ([]string, error) {
	switch scope {
	case domain.ScopePhase:
		anchor, err := s.phases.GetByID(ctx, anchorID)
		if err != nil {
			return nil, err
		}
		siblings, err := s.phases.ListByProject(ctx, anchor.ProjectID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(siblings))
		for i, p := range siblings {
			ids[i] = p.ID
		}
		return ids, nil

	case domain.ScopeWork:
		anchor, err := s.works.GetByID(ctx, anchorID)
		if err != nil {
			return nil, err
		}
		siblings, err := s.works.ListByPhase(ctx, anchor.PhaseID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(siblings))
		for i, w := range siblings {
			ids[i] = w.ID
		}
		return ids, nil

	case domain.ScopeTask:
		anchor, err := s.tasks.GetByID(ctx, anchorID)
		if err != nil {
			return nil, err
		}
		siblings, err := s.tasks.ListByWork(ctx, anchor.WorkID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(siblings))
		for i, t := range siblings {
			ids[i] = t.ID
		}
		return ids, nil

	default: // domain.ScopeTodo, already validated
		anchor, err := s.todos.GetByID(ctx, anchorID)
		if err != nil {
			return nil, err
		}
		siblings, err := s.todos.ListByTask(ctx, anchor.TaskID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(siblings))
		for i, t := range siblings {
			ids[i] = t.ID
		}
		return ids, nil
	}
}

func (s *reorderService) setOrderIndexTx(ctx context.Context, tx db.DBTX, scope domain.ScopeType, id string, idx int) error {
	switch scope {
	case domain.ScopePhase:
		return repository.NewSQLitePhaseRepo(tx).SetOrderIndex(ctx, id, idx)
	case domain.ScopeWork:
		return repository.NewSQLiteWorkRepo(tx).SetOrderIndex(ctx, id, idx)
	case domain.ScopeTask:
		return repository.NewSQLiteTaskRepo(tx).SetOrderIndex(ctx, id, idx)
	default:
		return repository.NewSQLiteTodoRepo(tx).SetOrderIndex(ctx, id, idx)
	}
}

// validatePermutation checks that ids is exactly the sibling set: same
// length, no duplicates, no strangers. A partial reorder would silently
// corrupt sibling ordering, so it is rejected up front.
func validatePermutation(ids, siblingIDs []string) error {
	if len(ids) != len(siblingIDs) {
		return validationErr("ids", "must list every item in the scope exactly once")
	}
	members := make(map[string]bool, len(siblingIDs))
	for _, id := range siblingIDs {
		members[id] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !members[id] {
			return validationErr("ids", "id "+id+" is not part of the scope")
		}
		if seen[id] {
			return validationErr("ids", "id "+id+" appears more than once")
		}
		seen[id] = true
	}
	return nil
}
