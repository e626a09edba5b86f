package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	httpAdapter "github.com/aretw0/entroplot/internal/adapters/http"
	"github.com/aretw0/entroplot/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	Dir        string
	ConfigPath string
	Overrides  map[string]any
	Addr       string
	Debug      bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// Serve exposes the live chart over HTTP until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
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
	// Per-request diagnostics go to the log, not to the console.
	p, err := newPlotter(opts.Dir, cfg, io.Discard, collector, logger)
	if err != nil {
		return fmt.Errorf("error initializing entroplot: %w", err)
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           httpAdapter.NewHandler(p, collector.Registry(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	fmt.Fprintf(opts.Stdout, "Serving entropy chart on %s\n", srv.Addr)
	fmt.Fprintf(opts.Stdout, "Reading results from: %s\n", p.Dir())
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		fmt.Fprintln(opts.Stdout, "Server stopped gracefully")
		return nil
	}
}
