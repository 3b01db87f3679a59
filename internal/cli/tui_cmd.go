package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riu-shimizu/Project-Todo-Manager/internal/tui"
	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [project-id]",
		Short: "Open the terminal Gantt viewer for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("tui requires an interactive terminal")
			}

			projectID, err := resolveProjectID(cmd.Context(), app, args)
			if err != nil {
				return err
			}

			model := tui.NewModel(app.Hierarchy, projectID)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// resolveProjectID takes the explicit argument, or the only project when
// exactly one exists.
func resolveProjectID(ctx context.Context, app *App, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	summaries, err := app.Projects.List(ctx, false)
	if err != nil {
		return "", err
	}
	switch len(summaries) {
	case 0:
		return "", fmt.Errorf("no projects yet; run `ptm seed` or `ptm import`")
	case 1:
		return summaries[0].ID, nil
	default:
		return "", fmt.Errorf("%d projects found; pass a project id", len(summaries))
	}
}
