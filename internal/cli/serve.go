package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phylograph/phylograph/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the phylograph HTTP API",
		Long: `Run the phylograph HTTP API.

Endpoints:
  POST /api/v1/layout  compute a layout from Newick data
  POST /api/v1/render  render artifacts from Newick data
  GET  /healthz        liveness probe
  GET  /version        build information

The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Server.Addr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the API server and blocks until the context is canceled.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	server := api.NewServer(runner, c.Logger)
	return server.ListenAndServe(ctx, addr)
}
