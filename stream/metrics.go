package stream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the stream-level metrics for document publishing and
// consumption.
type Metrics struct {
	DocumentsPublished  *prometheus.CounterVec
	AxiomsPublished     prometheus.Counter
	DocumentsConsumed   *prometheus.CounterVec
	TranslationDuration *prometheus.HistogramVec
	ErrorsTotal         *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all stream metrics
func NewMetrics() *Metrics {
	return &Metrics{
		DocumentsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "owlgraph",
				Subsystem: "stream",
				Name:      "documents_published_total",
				Help:      "Total number of translated documents published",
			},
			[]string{"subject"},
		),

		AxiomsPublished: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "owlgraph",
				Subsystem: "stream",
				Name:      "axioms_published_total",
				Help:      "Total number of axioms published across all documents",
			},
		),

		DocumentsConsumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "owlgraph",
				Subsystem: "stream",
				Name:      "documents_consumed_total",
				Help:      "Total number of documents consumed from the stream",
			},
			[]string{"subject", "status"},
		),

		TranslationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "owlgraph",
				Subsystem: "translate",
				Name:      "duration_seconds",
				Help:      "Time taken to translate a document",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "owlgraph",
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of stream errors",
			},
			[]string{"operation"},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.DocumentsPublished,
		m.AxiomsPublished,
		m.DocumentsConsumed,
		m.TranslationDuration,
		m.ErrorsTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordPublish records one published document.
func (m *Metrics) RecordPublish(subject string, axioms int) {
	m.DocumentsPublished.WithLabelValues(subject).Inc()
	m.AxiomsPublished.Add(float64(axioms))
}

// RecordConsume records one consumed document.
func (m *Metrics) RecordConsume(subject, status string) {
	m.DocumentsConsumed.WithLabelValues(subject, status).Inc()
}

// RecordTranslation records a translation duration.
func (m *Metrics) RecordTranslation(source string, duration time.Duration) {
	m.TranslationDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordError records a stream error.
func (m *Metrics) RecordError(operation string) {
	m.ErrorsTotal.WithLabelValues(operation).Inc()
}
