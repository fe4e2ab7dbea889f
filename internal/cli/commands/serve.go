package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/domino/internal/cli/config"
	"github.com/katalvlaran/domino/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Long: `Start an HTTP server with:

  POST /api/solve     {"tiles":["02","04","42"]} or {"input":"02, 04, 42"}
  POST /api/analyze   same body, pip degree report
  GET  /api/examples  sample inputs with results
  GET  /healthz       liveness

Tile sets that cannot form a line are answered from the pip degree test
without searching. Other searches are cut off after --timeout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			timeout, err := cmd.Flags().GetDuration("timeout")
			if err != nil {
				return err
			}
			srv := server.New(config.GetLogger(ctx), server.Options{RequestTimeout: timeout})

			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}
	cmd.Flags().String("addr", config.DefaultAddr, "listen address")
	cmd.Flags().Duration("timeout", 10*time.Second, "time limit per API request")

	return cmd
}
