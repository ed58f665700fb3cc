// Package metrics exposes the Prometheus collectors reported by the scheduler.
package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smart_task_scheduler"

// Metrics groups the collectors shared by the usecases and the HTTP layer.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	suggestDuration   *prometheus.HistogramVec
	suggestCandidates prometheus.Histogram
	commits           *prometheus.CounterVec
	calendarErrors    *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the instance registered with the global registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return shared
}

// MustNewMetrics registers the collectors with reg and panics on any
// registration error other than an identical collector already being present.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		suggestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "duration_seconds",
			Help:      "Time spent generating and ranking one suggestion page.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy", "status"}),
		suggestCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "candidates",
			Help:      "Number of candidate intervals considered per request.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tasks",
			Name:      "commits_total",
			Help:      "Task commits by entry point and outcome.",
		}, []string{"source", "outcome"}),
		calendarErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "errors_total",
			Help:      "Failed calls to the external calendar.",
		}, []string{"op"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.suggestDuration = register(reg, m.suggestDuration)
	m.suggestCandidates = register(reg, m.suggestCandidates)
	m.commits = register(reg, m.commits)
	m.calendarErrors = register(reg, m.calendarErrors)
	m.httpRequests = register(reg, m.httpRequests)
	m.httpDuration = register(reg, m.httpDuration)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveSuggest records one suggestion request.
func (m *Metrics) ObserveSuggest(strategy, status string, candidates int, d time.Duration) {
	if m == nil {
		return
	}
	m.suggestDuration.WithLabelValues(strategy, status).Observe(d.Seconds())
	if status == "ok" {
		m.suggestCandidates.Observe(float64(candidates))
	}
}

// IncCommit counts a commit attempt; outcome is "committed", "conflict" or "error".
func (m *Metrics) IncCommit(source, outcome string) {
	if m == nil {
		return
	}
	m.commits.WithLabelValues(source, outcome).Inc()
}

// IncCalendarError counts a failed calendar call.
func (m *Metrics) IncCalendarError(op string) {
	if m == nil {
		return
	}
	m.calendarErrors.WithLabelValues(op).Inc()
}

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, code).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
