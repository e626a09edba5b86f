package main

import (
	"context"

	"github.com/aretw0/entroplot/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve the live chart over HTTP",
	Long: `Starts an HTTP server that re-reads the experiment files on every request.
Routes: / (chart), /figure.json (Plotly JSON), /metrics (Prometheus), /health, /info.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		addr, _ := cmd.Flags().GetString("addr")
		opts := cli.ServeOptions{
			Dir:        resolveDir(cmd, args),
			ConfigPath: mustString(cmd, "config"),
			Overrides:  configOverrides(cmd.Flags()),
			Addr:       addr,
			Debug:      mustBool(cmd, "debug"),
		}

		finish(sigCtx, cli.Serve(sigCtx, opts))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8050", "Address to listen on")
}
