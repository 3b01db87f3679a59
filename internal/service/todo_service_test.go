package service

import (
	"context"
	"testing"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoCreateDefaultsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	created, err := f.todoSvc.Create(ctx, project.ID, task.ID, CreateTodoInput{
		Title:   "Write migration",
		DueDate: "2026-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, created.Status)
	assert.Equal(t, 1, created.OrderIndex)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, "2026-05-01", created.DueDate.Format(domain.DateLayout))
}

func TestTodoCreateRejectsBadStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	_, err := f.todoSvc.Create(ctx, project.ID, task.ID, CreateTodoInput{
		Title:  "Write migration",
		Status: "FINISHED",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestTodoCreateRejectsTaskFromAnotherProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, _, task := seedChain(t, ctx, f)

	other := testutil.NewTestProject("Other")
	require.NoError(t, f.projects.Create(ctx, other))

	_, err := f.todoSvc.Create(ctx, other.ID, task.ID, CreateTodoInput{Title: "Write migration"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTodoPatchTitleKeepsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	created, err := f.todoSvc.Create(ctx, project.ID, task.ID, CreateTodoInput{
		Title:  "Write migration",
		Status: string(domain.StatusInProgress),
	})
	require.NoError(t, err)

	patched, err := f.todoSvc.Patch(ctx, created.ID, domain.TodoPatch{
		Title: strptr("Write initial migration"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Write initial migration", patched.Title)
	assert.Equal(t, domain.StatusInProgress, patched.Status)
}

func TestTodoPatchFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	created, err := f.todoSvc.Create(ctx, project.ID, task.ID, CreateTodoInput{
		Title:   "Write migration",
		DueDate: "2026-05-01",
		Memo:    "see schema doc",
	})
	require.NoError(t, err)

	patched, err := f.todoSvc.Patch(ctx, created.ID, domain.TodoPatch{
		Status:  strptr(string(domain.StatusDone)),
		DueDate: strptr(""),
		Today:   boolptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, patched.Status)
	assert.Nil(t, patched.DueDate)
	assert.True(t, patched.Today)
	assert.Equal(t, "see schema doc", patched.Memo)

	_, err = f.todoSvc.Patch(ctx, created.ID, domain.TodoPatch{Status: strptr("bogus")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestTodoListToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project, _, _, task := seedChain(t, ctx, f)

	today := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)
	f.todoSvc.(*todoService).now = func() time.Time { return today }

	due := testutil.NewTestTodo(project.ID, task.ID, "due today", 1,
		testutil.WithTodoDue(testutil.Date(2026, time.May, 4)),
		testutil.WithTodoAssignee("alice"))
	flagged := testutil.NewTestTodo(project.ID, task.ID, "flagged", 2,
		testutil.WithTodoToday(),
		testutil.WithTodoStatus(domain.StatusDone),
		testutil.WithTodoAssignee("bob"))
	later := testutil.NewTestTodo(project.ID, task.ID, "due later", 3,
		testutil.WithTodoDue(testutil.Date(2026, time.May, 20)))
	for _, td := range []*domain.Todo{due, flagged, later} {
		require.NoError(t, f.todos.Create(ctx, td))
	}

	all, err := f.todoSvc.ListToday(ctx, project.ID, TodayQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "due today", all[0].Title)
	assert.Equal(t, "flagged", all[1].Title)

	byAssignee, err := f.todoSvc.ListToday(ctx, project.ID, TodayQuery{AssigneeID: "bob"})
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)
	assert.Equal(t, "flagged", byAssignee[0].Title)

	byStatus, err := f.todoSvc.ListToday(ctx, project.ID, TodayQuery{Status: string(domain.StatusNotStarted)})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "due today", byStatus[0].Title)

	_, err = f.todoSvc.ListToday(ctx, project.ID, TodayQuery{Status: "bogus"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = f.todoSvc.ListToday(ctx, "missing", TodayQuery{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}
