// SPDX-License-Identifier: MIT

package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/rotormix/mixer"
)

// Status label values of rotormix_geometries_total.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Metrics bundles the generation metrics of one mixgen run. They are kept
// in a private registry and exported as a node_exporter textfile.
type Metrics struct {
	reg *prometheus.Registry

	Geometries   *prometheus.CounterVec
	Rotors       prometheus.Histogram
	ClampedAxes  *prometheus.CounterVec
	LastRun      prometheus.Gauge
	LastDuration prometheus.Gauge
}

// NewMetrics registers the generation metrics against reg, or against a
// fresh registry when reg is nil.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		reg: reg,
		Geometries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rotormix_geometries_total",
			Help: "Geometries processed, labeled by status (ok or failed).",
		}, []string{"status"}),
		Rotors: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rotormix_rotors",
			Help:    "Rotor count of successfully mixed geometries.",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
		}),
		ClampedAxes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rotormix_clamped_axes_total",
			Help: "Legacy scale factors clamped to 1, labeled by axis.",
		}, []string{"axis"}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotormix_last_run_timestamp_seconds",
			Help: "Unix time the last generation finished.",
		}),
		LastDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotormix_last_run_duration_seconds",
			Help: "Wall time of the last generation in seconds.",
		}),
	}
	for name, c := range map[string]prometheus.Collector{
		"rotormix_geometries_total":           m.Geometries,
		"rotormix_rotors":                     m.Rotors,
		"rotormix_clamped_axes_total":         m.ClampedAxes,
		"rotormix_last_run_timestamp_seconds": m.LastRun,
		"rotormix_last_run_duration_seconds":  m.LastDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("observability: register %s: %w", name, err)
		}
	}
	m.Geometries.WithLabelValues(StatusOK)
	m.Geometries.WithLabelValues(StatusFailed)

	return m, nil
}

// RecordOutcome counts one mixed geometry.
func (m *Metrics) RecordOutcome(o mixer.Outcome) {
	if o.Err != nil || o.Result == nil {
		m.Geometries.WithLabelValues(StatusFailed).Inc()
		return
	}
	m.Geometries.WithLabelValues(StatusOK).Inc()
	m.Rotors.Observe(float64(o.Result.RotorCount))
	for _, w := range o.Result.Warnings {
		m.ClampedAxes.WithLabelValues(w.Axis.String()).Inc()
	}
}

// RecordLoadFailure counts a geometry that could not be loaded or was
// rejected before mixing.
func (m *Metrics) RecordLoadFailure() {
	m.Geometries.WithLabelValues(StatusFailed).Inc()
}

// RecordRun stamps the end of a run that started at start.
func (m *Metrics) RecordRun(start, end time.Time) {
	m.LastRun.Set(float64(end.UnixNano()) / 1e9)
	m.LastDuration.Set(end.Sub(start).Seconds())
}

// WriteTextfile writes the registry in the node_exporter textfile format.
// The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("observability: write %s: %w", path, err)
	}

	return nil
}
