package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hotwatch/internal/adapters/driving/mcp"
)

var serveStdio bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the watch configuration
to AI assistants and IDE agents.

By default the server listens over HTTP on the port from the watch
configuration. Use --stdio to communicate over stdin/stdout instead.

Examples:
  # HTTP on the configured port
  hotwatch serve

  # Stdio mode, for assistants that spawn the binary
  hotwatch serve --stdio`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveStdio, "stdio", false, "serve over stdio instead of HTTP")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if configurationService == nil {
		return errRegistryNotConfigured
	}

	server, err := mcp.NewServer(&mcp.Ports{Configuration: configurationService})
	if err != nil {
		return err
	}

	if serveStdio {
		return server.Run(cmd.Context())
	}

	cfg, err := configurationService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port())
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
