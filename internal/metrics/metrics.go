// Package metrics records quiz and LLM activity on a private Prometheus
// registry. There is no scrape endpoint; the registry is written to a
// node-exporter textfile on exit.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the BrainyDate collectors.
type Manager struct {
	namespace     string
	latencyBucket []float64
	registry      *prometheus.Registry

	quizSessions   *prometheus.CounterVec
	questionSource *prometheus.CounterVec
	llmDuration    *prometheus.HistogramVec
	quizScore      prometheus.Histogram
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric name prefix.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithLatencyBuckets sets the LLM latency histogram buckets, in seconds.
func WithLatencyBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.latencyBucket = buckets
		}
	}
}

// WithRegistry registers the collectors on reg instead of a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// NewManager creates the collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:     "brainydate",
		latencyBucket: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)
	m.quizSessions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "quiz_sessions_total",
		Help:      "Quiz sessions by outcome (finished, timed_out, error, abandoned)",
	}, []string{"outcome"})
	m.questionSource = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "question_source_total",
		Help:      "Question batches served, by source",
	}, []string{"source"})
	m.llmDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "llm_request_duration_seconds",
		Help:      "LLM request latency by purpose",
		Buckets:   m.latencyBucket,
	}, []string{"purpose"})
	m.quizScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "quiz_score",
		Help:      "Final quiz scores",
		Buckets:   prometheus.LinearBuckets(85, 10, 7),
	})
	return m
}

// Registry exposes the private registry.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// ObserveLLMRequest records one provider call. outcome is not a label; a
// failed call is still a latency sample.
func (m *Manager) ObserveLLMRequest(purpose, _ string, elapsed time.Duration) {
	m.llmDuration.WithLabelValues(purpose).Observe(elapsed.Seconds())
}

// ObserveQuestionSource counts a batch by origin.
func (m *Manager) ObserveQuestionSource(origin string) {
	m.questionSource.WithLabelValues(origin).Inc()
}

// ObserveSession counts a session end. A score is recorded only for
// sessions that produced one.
func (m *Manager) ObserveSession(outcome string, score int, scored bool) {
	m.quizSessions.WithLabelValues(outcome).Inc()
	if scored {
		m.quizScore.Observe(float64(score))
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Manager) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
