package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/domain"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixture wires every service over one in-memory database so tests exercise
// the real repositories instead of mocks.
type fixture struct {
	database *sql.DB
	uow      db.UnitOfWork

	projects repository.ProjectRepo
	phases   repository.PhaseRepo
	works    repository.WorkRepo
	tasks    repository.TaskRepo
	todos    repository.TodoRepo

	projectSvc   ProjectService
	phaseSvc     PhaseService
	workSvc      WorkService
	taskSvc      TaskService
	todoSvc      TodoService
	hierarchySvc HierarchyService
	reorderSvc   ReorderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	projects := repository.NewSQLiteProjectRepo(database)
	phases := repository.NewSQLitePhaseRepo(database)
	works := repository.NewSQLiteWorkRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	todos := repository.NewSQLiteTodoRepo(database)

	return &fixture{
		database:     database,
		uow:          uow,
		projects:     projects,
		phases:       phases,
		works:        works,
		tasks:        tasks,
		todos:        todos,
		projectSvc:   NewProjectService(projects, phases, works, tasks, todos, nil),
		phaseSvc:     NewPhaseService(projects, phases, nil),
		workSvc:      NewWorkService(phases, works, nil),
		taskSvc:      NewTaskService(works, tasks, nil),
		todoSvc:      NewTodoService(projects, tasks, todos, nil),
		hierarchySvc: NewHierarchyService(projects, phases, works, tasks, todos),
		reorderSvc:   NewReorderService(phases, works, tasks, todos, uow, nil),
	}
}

// seedChain inserts one project -> phase -> work -> task directly through
// the repositories and returns all four.
func seedChain(t *testing.T, ctx context.Context, f *fixture) (*domain.Project, *domain.Phase, *domain.Work, *domain.Task) {
	t.Helper()

	project := testutil.NewTestProject("Launch")
	require.NoError(t, f.projects.Create(ctx, project))

	phase := testutil.NewTestPhase(project.ID, "Build", 1)
	require.NoError(t, f.phases.Create(ctx, phase))

	work := testutil.NewTestWork(project.ID, phase.ID, "Backend", 1)
	require.NoError(t, f.works.Create(ctx, work))

	task := testutil.NewTestTask(project.ID, work.ID, "API", 1)
	require.NoError(t, f.tasks.Create(ctx, task))

	return project, phase, work, task
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }
