package cli

import (
	"github.com/riu-shimizu/Project-Todo-Manager/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Addr
			}

			srv := httpapi.NewServer(
				app.Projects,
				app.Phases,
				app.Works,
				app.Tasks,
				app.Todos,
				app.Hierarchy,
				app.Reorder,
				app.Log,
			)
			app.Log.WithField("addr", addr).Info("starting server")
			return srv.Router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
