// Package metrics exposes the counters of a world and its geometry as
// Prometheus metrics.
//
// The collector reads the live counters at scrape time; nothing has to be
// updated by the exploring code.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hypertile/core"
	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

// Namespace prefixes every metric name.
const Namespace = "hypertile"

// Collector gathers the metrics of one world. Register it with
// prometheus.Registerer.Register; several worlds can share a registry
// because every metric carries the world id as a constant label.
type Collector struct {
	metrics []prometheus.Collector
}

// NewCollector builds the metrics for w. The precision metrics come from
// g's monitor and are omitted when g is nil.
func NewCollector(w *core.World, g *geom.Geometry) *Collector {
	labels := prometheus.Labels{"world": w.ID().String()}
	counter := func(name, help string, f func() float64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: Namespace, Name: name, Help: help, ConstLabels: labels,
		}, f)
	}
	gauge := func(name, help string, f func() float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace, Name: name, Help: help, ConstLabels: labels,
		}, f)
	}

	c := &Collector{}
	c.metrics = append(c.metrics,
		gauge("heptagons", "Heptagons allocated in the world.",
			func() float64 { return float64(w.HeptagonCount()) }),
		gauge("cells", "Cells allocated in the world.",
			func() float64 { return float64(w.CellCount()) }),
		counter("create_step_calls_total", "Heptagon generation hook calls.",
			func() float64 { return float64(w.StepCalls()) }),
		counter("create_mov_calls_total", "Cell generation hook calls.",
			func() float64 { return float64(w.MovCalls()) }),
		counter("singular_inversions_total", "Singular matrices inverted (process wide).",
			func() float64 { return float64(matrix.SingularInversions()) }),
	)
	if g != nil {
		m := g.Monitor()
		c.metrics = append(c.metrics,
			counter("precision_warnings_total", "Warnings that precision errors are building up.",
				func() float64 { return float64(m.Warnings()) }),
			gauge("precision_worst_distance", "Largest distance between points judged equal.",
				m.Worst),
		)
	}
	return c
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.metrics {
		m.Collect(ch)
	}
}
