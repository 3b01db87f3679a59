package cli

import (
	"fmt"

	"github.com/riu-shimizu/Project-Todo-Manager/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <plan.json>",
		Short: "Import a project plan from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadPlanSchema(args[0])
			if err != nil {
				return err
			}

			project, err := app.Imports.Import(cmd.Context(), schema)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported project %q (%s)\n", project.Name, project.ID)
			return nil
		},
	}
}
