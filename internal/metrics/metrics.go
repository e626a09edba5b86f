// Package metrics counts pipeline activity with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons used as the "reason" label.
const (
	ReasonError          = "error"
	ReasonMissingColumns = "missing_columns"
)

// Collector groups the counters of a plotting process.
// Each Collector owns its registry so tests and servers do not share state.
type Collector struct {
	registry   *prometheus.Registry
	discovered prometheus.Counter
	built      prometheus.Counter
	points     prometheus.Counter
	skipped    *prometheus.CounterVec
	renders    prometheus.Counter
}

// New creates a Collector with all counters registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		discovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entroplot_files_discovered_total",
			Help: "Input files matched by the discovery pattern.",
		}),
		built: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entroplot_series_built_total",
			Help: "Series added to a figure.",
		}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entroplot_points_total",
			Help: "Points across all built series.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "entroplot_files_skipped_total",
			Help: "Input files excluded from a figure, by reason.",
		}, []string{"reason"}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "entroplot_renders_total",
			Help: "Chart documents rendered.",
		}),
	}
	c.registry.MustRegister(c.discovered, c.built, c.points, c.skipped, c.renders)

	// Pre-create label values so both reasons are exported as zero.
	c.skipped.WithLabelValues(ReasonError)
	c.skipped.WithLabelValues(ReasonMissingColumns)
	return c
}

// Registry exposes the collectors for promhttp or textfile export.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) FilesDiscovered(n int) {
	c.discovered.Add(float64(n))
}

func (c *Collector) SeriesBuilt(points int) {
	c.built.Inc()
	c.points.Add(float64(points))
}

func (c *Collector) FileSkipped(reason string) {
	c.skipped.WithLabelValues(reason).Inc()
}

func (c *Collector) Rendered() {
	c.renders.Inc()
}

// WriteTextfile writes the current values in the Prometheus text format,
// suitable for a node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
