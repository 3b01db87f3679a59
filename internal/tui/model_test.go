package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/teatest"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedViewerProject(t *testing.T) (service.HierarchyService, string) {
	t.Helper()
	ctx := context.Background()
	database := testutil.NewTestDB(t)

	projects := repository.NewSQLiteProjectRepo(database)
	phases := repository.NewSQLitePhaseRepo(database)
	works := repository.NewSQLiteWorkRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	todos := repository.NewSQLiteTodoRepo(database)

	project := testutil.NewTestProject("Relaunch")
	require.NoError(t, projects.Create(ctx, project))

	phase := testutil.NewTestPhase(project.ID, "Design", 1, testutil.WithPhaseDates(
		testutil.Date(2026, time.June, 1), testutil.Date(2026, time.June, 14), nil, nil))
	require.NoError(t, phases.Create(ctx, phase))

	work := testutil.NewTestWork(project.ID, phase.ID, "Wireframes", 1, testutil.WithWorkDates(
		testutil.Date(2026, time.June, 1), testutil.Date(2026, time.June, 7),
		testutil.Date(2026, time.June, 2), nil))
	require.NoError(t, works.Create(ctx, work))

	task := testutil.NewTestTask(project.ID, work.ID, "Landing page", 1, testutil.WithTaskDates(
		testutil.Date(2026, time.June, 2), testutil.Date(2026, time.June, 5), nil, nil))
	require.NoError(t, tasks.Create(ctx, task))

	todo := testutil.NewTestTodo(project.ID, task.ID, "Hero", 1,
		testutil.WithTodoDue(testutil.Date(2026, time.June, 4)))
	require.NoError(t, todos.Create(ctx, todo))

	return service.NewHierarchyService(projects, phases, works, tasks, todos), project.ID
}

func newViewerDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	hierarchies, projectID := seedViewerProject(t)

	m := NewModel(hierarchies, projectID)
	m.now = func() time.Time { return time.Date(2026, time.June, 3, 12, 0, 0, 0, time.UTC) }

	d := teatest.New(t, m)
	d.Resize(120, 40)
	d.DrainInit()
	return d
}

func TestViewerRendersAllRows(t *testing.T) {
	d := newViewerDriver(t)

	out := d.View()
	assert.Contains(t, out, "Relaunch")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "Wireframes")
	assert.Contains(t, out, "Landing page")
	assert.Contains(t, out, string(markerGlyph), "due marker visible")
	assert.Contains(t, out, string(actualGlyph), "started work shows an actual bar")
	assert.Contains(t, out, string(plannedGlyph))
}

func TestViewerCollapseHidesBranchAndShrinksTimeline(t *testing.T) {
	d := newViewerDriver(t)

	model := d.Model.(Model)
	require.Len(t, model.layout.Rows, 3)
	expandedDays := model.layout.Days()

	// Cursor starts on the phase row; enter collapses it.
	d.PressEnter()

	model = d.Model.(Model)
	require.Len(t, model.layout.Rows, 1)
	assert.True(t, model.layout.Rows[0].Collapsed)
	assert.NotContains(t, d.View(), "Wireframes")
	assert.LessOrEqual(t, model.layout.Days(), expandedDays)

	// Enter again restores the branch.
	d.PressEnter()
	model = d.Model.(Model)
	assert.Len(t, model.layout.Rows, 3)
}

func TestViewerCursorMovementAndQuit(t *testing.T) {
	d := newViewerDriver(t)

	d.PressKey('j')
	d.PressKey('j')
	model := d.Model.(Model)
	assert.Equal(t, 2, model.cursor)

	// Moving past the last row is a no-op.
	d.PressKey('j')
	model = d.Model.(Model)
	assert.Equal(t, 2, model.cursor)

	d.PressKey('k')
	model = d.Model.(Model)
	assert.Equal(t, 1, model.cursor)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestViewerShowsLoadErrors(t *testing.T) {
	hierarchies, _ := seedViewerProject(t)

	m := NewModel(hierarchies, "missing-project")
	d := teatest.New(t, m)
	d.DrainInit()

	out := d.View()
	assert.True(t, strings.Contains(out, "error:"), out)
	assert.Contains(t, out, "not found")
}
