package service

import (
	"context"
	"testing"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseCreateAppendsToEndOfProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	project := testutil.NewTestProject("Launch")
	require.NoError(t, f.projects.Create(ctx, project))

	first, err := f.phaseSvc.Create(ctx, project.ID, CreatePlanItemInput{Title: "Design"})
	require.NoError(t, err)
	second, err := f.phaseSvc.Create(ctx, project.ID, CreatePlanItemInput{
		Title:        "Build",
		PlannedStart: "2026-04-01",
		PlannedEnd:   "2026-04-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.OrderIndex)
	assert.Equal(t, 2, second.OrderIndex)
	require.NotNil(t, second.PlannedStart)
	assert.Equal(t, "2026-04-01", second.PlannedStart.Format(domain.DateLayout))
	assert.Nil(t, second.ActualStart)
}

func TestPhaseCreateUnderMissingProject(t *testing.T) {
	f := newFixture(t)

	_, err := f.phaseSvc.Create(context.Background(), "missing", CreatePlanItemInput{Title: "Design"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPhaseCreateRejectsMalformedDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	project := testutil.NewTestProject("Launch")
	require.NoError(t, f.projects.Create(ctx, project))

	_, err := f.phaseSvc.Create(ctx, project.ID, CreatePlanItemInput{
		Title:        "Design",
		PlannedStart: "04/01/2026",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "plannedStart", verr.Field)
}

func TestPhasePatchClearsActualEndAndRevertsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, phase, _, _ := seedChain(t, ctx, f)

	done, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{
		ActualStart: strptr("2026-04-02"),
		ActualEnd:   strptr("2026-04-20"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDone, done.DerivedStatus())

	// Empty string clears; the untouched actualStart keeps it in progress.
	cleared, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{
		ActualEnd: strptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.ActualEnd)
	require.NotNil(t, cleared.ActualStart)
	assert.Equal(t, domain.StatusInProgress, cleared.DerivedStatus())

	// Clearing the start as well drops it back to not started.
	reset, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{
		ActualStart: strptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, reset.DerivedStatus())
}

func TestPhasePatchLeavesUnsuppliedFieldsAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, phase, _, _ := seedChain(t, ctx, f)

	_, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{
		PlannedStart: strptr("2026-04-01"),
	})
	require.NoError(t, err)

	got, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{
		Title: strptr("Renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	require.NotNil(t, got.PlannedStart)
	assert.Equal(t, "2026-04-01", got.PlannedStart.Format(domain.DateLayout))
}

func TestPhasePatchRejectsEmptyTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, phase, _, _ := seedChain(t, ctx, f)

	_, err := f.phaseSvc.Patch(ctx, phase.ID, domain.PlanItemPatch{Title: strptr("  ")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestWorkCreateRejectsPhaseFromAnotherProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, phase, _, _ := seedChain(t, ctx, f)

	other := testutil.NewTestProject("Other")
	require.NoError(t, f.projects.Create(ctx, other))

	_, err := f.workSvc.Create(ctx, other.ID, phase.ID, CreatePlanItemInput{Title: "Backend"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskCreateUnderVerifiedWork(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, work, _ := seedChain(t, ctx, f)

	created, err := f.taskSvc.Create(ctx, project.ID, work.ID, CreatePlanItemInput{
		Title:       "Schema",
		ActualStart: "2026-04-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.OrderIndex, "seedChain already placed one task")
	assert.Equal(t, domain.StatusInProgress, created.DerivedStatus())

	_, err = f.taskSvc.Create(ctx, project.ID, "missing-work", CreatePlanItemInput{Title: "Schema"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanItemDeleteMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.phaseSvc.Delete(ctx, "missing"), repository.ErrNotFound)
	require.ErrorIs(t, f.workSvc.Delete(ctx, "missing"), repository.ErrNotFound)
	require.ErrorIs(t, f.taskSvc.Delete(ctx, "missing"), repository.ErrNotFound)
}

func TestPhaseDeleteCascadesThroughService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, phase, _, task := seedChain(t, ctx, f)

	todo := testutil.NewTestTodo(project.ID, task.ID, "step", 1)
	require.NoError(t, f.todos.Create(ctx, todo))

	require.NoError(t, f.phaseSvc.Delete(ctx, phase.ID))

	h, err := f.hierarchySvc.Hierarchy(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, h.Phases)
	_, err = f.todos.GetByID(ctx, todo.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
