// Package metrics exposes layout pass statistics as Prometheus collectors.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "layout2d"

// UpdateStats describes one Measure+Arrange update of a viewport.
type UpdateStats struct {
	Measured int
	Arranged int
	Touched  int // distinct nodes measured or arranged
	Redraws  int
	Duration time.Duration
}

// Recorder records update statistics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	updates  prometheus.Counter
	duration prometheus.Histogram
	measured prometheus.Counter
	arranged prometheus.Counter
	redraws  prometheus.Counter
	lastSize prometheus.Gauge
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Number of layout updates run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "update_duration_seconds",
			Help:      "Wall time of a Measure+Arrange update.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		measured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_measured_total",
			Help:      "Nodes whose measure result was recomputed.",
		}),
		arranged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_arranged_total",
			Help:      "Nodes whose arrange result was recomputed.",
		}),
		redraws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redraw_requests_total",
			Help:      "Distinct nodes that requested a redraw during an update.",
		}),
		lastSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_update_nodes",
			Help:      "Distinct nodes measured or arranged by the most recent update.",
		}),
	}

	for _, c := range []prometheus.Collector{r.updates, r.duration, r.measured, r.arranged, r.redraws, r.lastSize} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register layout metrics: %w", err)
		}
	}
	return r, nil
}

// Observe records one update.
func (r *Recorder) Observe(s UpdateStats) {
	if r == nil {
		return
	}
	r.updates.Inc()
	r.duration.Observe(s.Duration.Seconds())
	r.measured.Add(float64(s.Measured))
	r.arranged.Add(float64(s.Arranged))
	r.redraws.Add(float64(s.Redraws))
	r.lastSize.Set(float64(s.Touched))
}

// Dump writes every metric family gathered from g in the Prometheus text
// exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
