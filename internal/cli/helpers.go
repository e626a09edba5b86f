package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/aretw0/entroplot"
	"github.com/aretw0/entroplot/internal/config"
	"github.com/aretw0/entroplot/internal/logging"
	"github.com/aretw0/entroplot/internal/metrics"
	"github.com/aretw0/entroplot/internal/presentation/chart"
	"github.com/aretw0/entroplot/internal/presentation/tui"
	"golang.org/x/term"
)

// SignalContext is a context cancelled by SIGINT or SIGTERM that remembers
// which signal arrived.
type SignalContext struct {
	context.Context
	Cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext works like signal.NotifyContext but keeps the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// ExitCode maps a command outcome to a process status: 128+signo after an
// interrupt, 1 for any other error, 0 otherwise.
func ExitCode(err error, sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	if err != nil {
		return 1
	}
	return 0
}

// resolveConfig layers defaults, the config file and flag overrides.
func resolveConfig(dir, path string, overrides map[string]any) (config.Config, error) {
	cfg, err := config.Load(dir, path)
	if err != nil {
		return cfg, err
	}
	if len(overrides) > 0 {
		if err := config.Decode(overrides, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid flags: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// createLogger configures the application logger.
// Debug mode wins over the configured level.
func createLogger(w io.Writer, level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

// newPlotter wires the pipeline described by cfg.
func newPlotter(dir string, cfg config.Config, stdout io.Writer, collector *metrics.Collector, logger *slog.Logger) (*entroplot.Plotter, error) {
	renderer, err := chart.NewHTMLRenderer(cfg.PlotlyJS)
	if err != nil {
		return nil, err
	}

	return entroplot.New(dir,
		entroplot.WithPattern(cfg.Pattern),
		entroplot.WithLayout(cfg.Layout()),
		entroplot.WithRenderer(renderer),
		entroplot.WithReporter(tui.NewConsoleReporter(stdout)),
		entroplot.WithMetrics(collector),
		entroplot.WithLogger(logger),
	)
}

// resolvePath anchors a relative path at dir.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
