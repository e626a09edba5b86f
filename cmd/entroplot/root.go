package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/entroplot/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "entroplot [dir]",
	Short: "Overlay experiment entropy curves in one interactive chart",
	Long: `entroplot reads every experiment_<id>_entropies.csv file in a directory,
plots its Entropy column against its Generation column, and writes all runs to
a single interactive chart (entropy_plots.html).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		opts := cli.RunOptions{
			Dir:        resolveDir(cmd, args),
			ConfigPath: mustString(cmd, "config"),
			Overrides:  configOverrides(cmd.Flags()),
			Summary:    mustBool(cmd, "summary"),
			Debug:      mustBool(cmd, "debug"),
		}

		finish(sigCtx, cli.Execute(sigCtx, opts))
	},
}

// finish prints err unless an interrupt caused it and exits with the
// matching status (128+signo when interrupted).
func finish(sigCtx *cli.SignalContext, err error) {
	sig := sigCtx.Signal()
	if err != nil && sig == nil {
		fmt.Printf("Error: %v\n", err)
	}
	if code := cli.ExitCode(err, sig); code != 0 {
		sigCtx.Cancel()
		os.Exit(code)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"pattern":      "pattern",
	"output":       "output",
	"plotly-js":    "plotly_js",
	"metrics-file": "metrics_file",
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the experiment CSV files")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: entroplot.yaml in --dir, if present)")
	rootCmd.PersistentFlags().String("pattern", "", "Glob for input files (default experiment_*_entropies.csv)")
	rootCmd.PersistentFlags().String("plotly-js", "", `Chart script: "builtin" (offline), "cdn", a Plotly http(s) URL, or a local Plotly bundle to inline`)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	rootCmd.Flags().StringP("output", "o", "", "Chart document to write (default entropy_plots.html)")
	rootCmd.Flags().String("metrics-file", "", "Write Prometheus text-format counters to this file")
	rootCmd.Flags().Bool("summary", false, "Print a per-series summary table after plotting")
}

// resolveDir prefers an explicit --dir over the positional argument.
func resolveDir(cmd *cobra.Command, args []string) string {
	dir := mustString(cmd, "dir")
	if !cmd.Flags().Changed("dir") && len(args) > 0 {
		dir = args[0]
	}
	return dir
}

// configOverrides collects the config keys the user set explicitly.
func configOverrides(flags *pflag.FlagSet) map[string]any {
	overrides := map[string]any{}
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
