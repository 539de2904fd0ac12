// Package metrics exposes Prometheus instruments for batch validation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the validation instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Batches by schema and outcome ("complete", "failed")
	Batches *prometheus.CounterVec

	// Rows by schema and outcome ("accepted", "rejected")
	Rows *prometheus.CounterVec

	// Violations by schema and error kind
	Violations *prometheus.CounterVec

	// Missing source columns reported by extract, by schema
	MissingColumns *prometheus.CounterVec

	// Batch validation latency by schema
	BatchDuration *prometheus.HistogramVec

	// Elevation lookups by outcome ("ok", "failed")
	ElevationBatches *prometheus.CounterVec
}

// New registers the instruments with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Batches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoanla_batches_total",
			Help: "Validation batches by schema and outcome",
		}, []string{"schema", "outcome"}),

		Rows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoanla_rows_total",
			Help: "Validated rows by schema and outcome",
		}, []string{"schema", "outcome"}),

		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoanla_violations_total",
			Help: "Validation errors by schema and kind",
		}, []string{"schema", "kind"}),

		MissingColumns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoanla_missing_columns_total",
			Help: "Declared fields absent from the source, by schema",
		}, []string{"schema"}),

		BatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geoanla_batch_duration_seconds",
			Help:    "Duration of batch validation by schema",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"schema"}),

		ElevationBatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geoanla_elevation_batches_total",
			Help: "Elevation service requests by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveBatch records a finished batch.
func (m *Metrics) ObserveBatch(schema, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Batches.WithLabelValues(schema, outcome).Inc()
	m.BatchDuration.WithLabelValues(schema).Observe(d.Seconds())
}

// AddRows records accepted and rejected row counts.
func (m *Metrics) AddRows(schema string, accepted, rejected int) {
	if m == nil {
		return
	}
	m.Rows.WithLabelValues(schema, "accepted").Add(float64(accepted))
	m.Rows.WithLabelValues(schema, "rejected").Add(float64(rejected))
}

// IncrementViolation records one validation error.
func (m *Metrics) IncrementViolation(schema, kind string) {
	if m != nil {
		m.Violations.WithLabelValues(schema, kind).Inc()
	}
}

// AddMissingColumns records columns the extract step could not find.
func (m *Metrics) AddMissingColumns(schema string, n int) {
	if m != nil && n > 0 {
		m.MissingColumns.WithLabelValues(schema).Add(float64(n))
	}
}

// IncrementElevation records one elevation service request.
func (m *Metrics) IncrementElevation(outcome string) {
	if m != nil {
		m.ElevationBatches.WithLabelValues(outcome).Inc()
	}
}
