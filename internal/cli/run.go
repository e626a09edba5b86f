package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/entroplot/internal/metrics"
	"github.com/aretw0/entroplot/internal/presentation/tui"
	"github.com/aretw0/entroplot/pkg/domain"
)

// RunOptions contains all the configuration for the plot command.
type RunOptions struct {
	Dir        string
	ConfigPath string
	// Overrides holds config keys set explicitly on the command line.
	Overrides map[string]any
	Summary   bool
	Debug     bool
	Stdout    io.Writer
	Stderr    io.Writer
}

// Execute runs the plot command: discover, build, render, report.
// Finding no input files is not an error.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := resolveConfig(opts.Dir, opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}

	logger, err := createLogger(opts.Stderr, cfg.LogLevel, opts.Debug)
	if err != nil {
		return err
	}

	collector := metrics.New()
	p, err := newPlotter(opts.Dir, cfg, opts.Stdout, collector, logger)
	if err != nil {
		return fmt.Errorf("error initializing entroplot: %w", err)
	}

	fig, runErr := p.Plot(ctx, cfg.Output)
	if runErr != nil && !errors.Is(runErr, domain.ErrNoInputFiles) {
		return runErr
	}

	if cfg.MetricsFile != "" {
		if err := collector.WriteTextfile(resolvePath(opts.Dir, cfg.MetricsFile)); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if opts.Summary && fig != nil {
		printSummary(opts.Stdout, fig)
	}
	return nil
}

// printSummary shows the per-series table, styled on terminals and as plain
// markdown otherwise so it can be piped into files.
func printSummary(w io.Writer, fig *domain.Figure) {
	md := tui.SummaryMarkdown(fig)
	if !isTerminal(w) {
		fmt.Fprint(w, "\n"+md)
		return
	}

	render, err := tui.NewRenderer()
	if err == nil {
		if out, err := render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, "\n"+md)
}
