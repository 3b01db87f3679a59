// Package cli wires the ptm subcommands over the service layer.
package cli

import (
	"github.com/riu-shimizu/Project-Todo-Manager/internal/config"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Phases    service.PhaseService
	Works     service.WorkService
	Tasks     service.TaskService
	Todos     service.TodoService
	Hierarchy service.HierarchyService
	Reorder   service.ReorderService
	Imports   service.ImportService

	Config config.Config
	Log    *logrus.Logger

	// IsInteractive reports whether stdin is a terminal; the tui command
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ptm" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ptm",
		Short: "Project planner with hierarchy, todos and a Gantt chart",
	}

	root.AddCommand(
		newServeCmd(app),
		newTuiCmd(app),
		newSeedCmd(app),
		newImportCmd(app),
	)

	return root
}
