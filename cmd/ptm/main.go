package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/cli"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/config"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/db"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/repository"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	workRepo := repository.NewSQLiteWorkRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	todoRepo := repository.NewSQLiteTodoRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	obs := service.NewLogUseCaseObserver(log)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo, phaseRepo, workRepo, taskRepo, todoRepo, obs),
		Phases:    service.NewPhaseService(projectRepo, phaseRepo, obs),
		Works:     service.NewWorkService(phaseRepo, workRepo, obs),
		Tasks:     service.NewTaskService(workRepo, taskRepo, obs),
		Todos:     service.NewTodoService(projectRepo, taskRepo, todoRepo, obs),
		Hierarchy: service.NewHierarchyService(projectRepo, phaseRepo, workRepo, taskRepo, todoRepo),
		Reorder:   service.NewReorderService(phaseRepo, workRepo, taskRepo, todoRepo, uow, obs),
		Imports:   service.NewImportService(uow, obs),
		Config:    cfg,
		Log:       log,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
