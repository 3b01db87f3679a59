package cli

import (
	"fmt"
	"time"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/seed"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo project",
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := seed.Demo(cmd.Context(), app.Imports, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created demo project %q (%s)\n", project.Name, project.ID)
			return nil
		},
	}
}
