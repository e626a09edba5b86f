package entroplot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/entroplot/internal/adapters/file"
	"github.com/aretw0/entroplot/internal/discovery"
	"github.com/aretw0/entroplot/internal/logging"
	"github.com/aretw0/entroplot/internal/metrics"
	"github.com/aretw0/entroplot/internal/presentation/chart"
	"github.com/aretw0/entroplot/internal/series"
	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/aretw0/entroplot/pkg/ports"
)

// Version is the release of the entroplot module. It is overridden at build
// time with -ldflags "-X github.com/aretw0/entroplot.Version=...".
var Version = "0.1.0"

// Plotter is the high-level entry point: it discovers result files in a
// directory, builds one series per valid file, and renders the figure.
type Plotter struct {
	dir      string
	pattern  string
	layout   domain.Layout
	builder  *series.Builder
	read     series.TableReader
	renderer ports.FigureRenderer
	reporter ports.Reporter
	metrics  *metrics.Collector
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Plotter.
type Option func(*Plotter)

// WithPattern sets the discovery glob (default domain.DefaultPattern).
func WithPattern(pattern string) Option {
	return func(p *Plotter) {
		p.pattern = pattern
	}
}

// WithLayout sets the chart layout (default domain.DefaultLayout()).
func WithLayout(layout domain.Layout) Option {
	return func(p *Plotter) {
		p.layout = layout
	}
}

// WithRenderer injects the figure renderer (default: self-contained HTML).
func WithRenderer(r ports.FigureRenderer) Option {
	return func(p *Plotter) {
		p.renderer = r
	}
}

// WithReporter injects the diagnostics sink (default: discard).
func WithReporter(r ports.Reporter) Option {
	return func(p *Plotter) {
		p.reporter = r
	}
}

// WithMetrics injects the metrics collector (default: a private collector).
func WithMetrics(c *metrics.Collector) Option {
	return func(p *Plotter) {
		p.metrics = c
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plotter) {
		p.logger = logger
	}
}

// WithTableReader replaces the CSV reader, mostly for tests.
func WithTableReader(read series.TableReader) Option {
	return func(p *Plotter) {
		p.read = read
	}
}

// New creates a Plotter for the files in dir.
func New(dir string, opts ...Option) (*Plotter, error) {
	if dir == "" {
		dir = "."
	}

	p := &Plotter{
		dir:     dir,
		pattern: domain.DefaultPattern,
		layout:  domain.DefaultLayout(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.renderer == nil {
		r, err := chart.NewHTMLRenderer("")
		if err != nil {
			return nil, err
		}
		p.renderer = r
	}
	if p.reporter == nil {
		p.reporter = ports.NopReporter{}
	}
	if p.metrics == nil {
		p.metrics = metrics.New()
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}

	p.builder = series.NewBuilder(p.pattern, p.read)
	return p, nil
}

// Dir returns the directory the Plotter reads from.
func (p *Plotter) Dir() string {
	return p.dir
}

// Collect runs discovery and series building.
//
// It returns domain.ErrNoInputFiles when nothing matches the pattern.
// Per-file failures never abort the run: unreadable files are reported
// through Reporter.Failed, files lacking a required column through
// Reporter.Skipped, and both are left out of the figure. The returned
// figure may therefore be empty.
func (p *Plotter) Collect(ctx context.Context) (*domain.Figure, error) {
	files, err := discovery.Find(p.dir, p.pattern)
	if err != nil {
		return nil, err
	}
	p.metrics.FilesDiscovered(len(files))
	p.logger.Debug("discovered input files", "dir", p.dir, "pattern", p.pattern, "count", len(files))

	if len(files) == 0 {
		return nil, domain.ErrNoInputFiles
	}

	fig := domain.NewFigure(p.layout)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s, err := p.builder.Build(path)
		if err != nil {
			var missing *domain.MissingColumnsError
			if errors.As(err, &missing) {
				p.logger.Info("skipping file without required columns", "file", path, "missing", missing.Missing)
				p.metrics.FileSkipped(metrics.ReasonMissingColumns)
				p.reporter.Skipped(path, missing)
				continue
			}
			p.logger.Info("failed to process file", "file", path, "error", err)
			p.metrics.FileSkipped(metrics.ReasonError)
			p.reporter.Failed(path, unwrapParse(err))
			continue
		}

		p.logger.Debug("series built", "file", path, "label", s.Label, "points", s.Len())
		p.metrics.SeriesBuilt(s.Len())
		fig.Add(s)
	}

	return fig, nil
}

// Render writes fig through the configured renderer.
func (p *Plotter) Render(w io.Writer, fig *domain.Figure) error {
	if err := p.renderer.Render(w, fig); err != nil {
		return err
	}
	p.metrics.Rendered()
	return nil
}

// Plot collects the figure and writes it to output, replacing any previous
// document. A relative output is resolved against the Plotter's directory.
//
// When no input file exists it reports Reporter.NoInput, writes nothing and
// returns domain.ErrNoInputFiles.
func (p *Plotter) Plot(ctx context.Context, output string) (*domain.Figure, error) {
	fig, err := p.Collect(ctx)
	if errors.Is(err, domain.ErrNoInputFiles) {
		p.reporter.NoInput(p.pattern)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	dest := output
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(p.dir, dest)
	}

	err = file.WriteAtomic(dest, func(w io.Writer) error {
		return p.Render(w, fig)
	})
	if err != nil {
		return fig, fmt.Errorf("failed to write %s: %w", output, err)
	}

	p.logger.Info("chart written", "output", dest, "series", fig.Len(), "points", fig.Points())
	p.reporter.Saved(p.displayPath(output, dest))
	return fig, nil
}

// displayPath names the written document the way the user can find it: as
// given when it was relative to the current directory, resolved otherwise.
func (p *Plotter) displayPath(output, dest string) string {
	if filepath.Clean(p.dir) == "." {
		return output
	}
	return dest
}

// unwrapParse strips the path from file-level errors; the reporter already
// names the file.
func unwrapParse(err error) error {
	var pe *domain.ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		return pe.Err
	}
	return err
}
