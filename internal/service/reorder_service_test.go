package service

import (
	"context"
	"errors"
	"testing"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPhases(t *testing.T, ctx context.Context, f *fixture, n int) (projectID string, ids []string) {
	t.Helper()

	project := testutil.NewTestProject("Launch")
	require.NoError(t, f.projects.Create(ctx, project))

	for i := 0; i < n; i++ {
		p := testutil.NewTestPhase(project.ID, "phase", i+1)
		require.NoError(t, f.phases.Create(ctx, p))
		ids = append(ids, p.ID)
	}
	return project.ID, ids
}

func phaseOrder(t *testing.T, ctx context.Context, f *fixture, projectID string) []string {
	t.Helper()
	phases, err := f.phases.ListByProject(ctx, projectID)
	require.NoError(t, err)
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = p.ID
	}
	return out
}

func TestReorderRewritesScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, ids := seedPhases(t, ctx, f, 3)

	reversed := []string{ids[2], ids[0], ids[1]}
	require.NoError(t, f.reorderSvc.Reorder(ctx, domain.ScopePhase, reversed))

	assert.Equal(t, reversed, phaseOrder(t, ctx, f, projectID))

	// Indexes are rewritten as a dense 1..n sequence.
	for i, id := range reversed {
		p, err := f.phases.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, p.OrderIndex)
	}
}

func TestReorderTodosWithinTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	var ids []string
	for i := 0; i < 3; i++ {
		td := testutil.NewTestTodo(project.ID, task.ID, "step", i+1)
		require.NoError(t, f.todos.Create(ctx, td))
		ids = append(ids, td.ID)
	}

	want := []string{ids[1], ids[2], ids[0]}
	require.NoError(t, f.reorderSvc.Reorder(ctx, domain.ScopeTodo, want))

	todos, err := f.todos.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	got := make([]string, len(todos))
	for i, td := range todos {
		got[i] = td.ID
	}
	assert.Equal(t, want, got)
}

func TestReorderValidatesIDSet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, ids := seedPhases(t, ctx, f, 3)

	var verr *ValidationError

	// Partial set.
	err := f.reorderSvc.Reorder(ctx, domain.ScopePhase, ids[:2])
	require.ErrorAs(t, err, &verr)

	// Duplicate id.
	err = f.reorderSvc.Reorder(ctx, domain.ScopePhase, []string{ids[0], ids[1], ids[1]})
	require.ErrorAs(t, err, &verr)

	// Stranger id.
	err = f.reorderSvc.Reorder(ctx, domain.ScopePhase, []string{ids[0], ids[1], "stranger"})
	require.ErrorAs(t, err, &verr)

	// Empty list and unknown scope.
	err = f.reorderSvc.Reorder(ctx, domain.ScopePhase, nil)
	require.ErrorAs(t, err, &verr)
	err = f.reorderSvc.Reorder(ctx, domain.ScopeType("milestone"), ids)
	require.ErrorAs(t, err, &verr)

	// Unknown anchor id.
	err = f.reorderSvc.Reorder(ctx, domain.ScopePhase, []string{"missing", ids[0], ids[1]})
	require.ErrorIs(t, err, repository.ErrNotFound)

	// None of the failures moved anything.
	assert.Equal(t, ids, phaseOrder(t, ctx, f, projectID))
}

func TestReorderIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projectID, ids := seedPhases(t, ctx, f, 5)

	// Interrupt a renumbering transaction halfway through and verify the
	// partial writes are rolled back wholesale.
	boom := errors.New("interrupted")
	err := f.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		phases := repository.NewSQLitePhaseRepo(tx)
		require.NoError(t, phases.SetOrderIndex(ctx, ids[0], 5))
		require.NoError(t, phases.SetOrderIndex(ctx, ids[1], 4))
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, ids, phaseOrder(t, ctx, f, projectID), "original order must survive an interrupted rewrite")

	// The same rewrite, run to completion, lands fully.
	reversed := []string{ids[4], ids[3], ids[2], ids[1], ids[0]}
	require.NoError(t, f.reorderSvc.Reorder(ctx, domain.ScopePhase, reversed))
	assert.Equal(t, reversed, phaseOrder(t, ctx, f, projectID))
}
