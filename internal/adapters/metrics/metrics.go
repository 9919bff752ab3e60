// Package metrics exposes Prometheus instrumentation for the competition
// server: HTTP request counts/latency, database query latency, and
// leaderboard recompute counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shootcomp"

// Metrics holds all collectors behind one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueryDuration     *prometheus.HistogramVec
	leaderboardBuilds   prometheus.Counter
	scoresSubmitted     prometheus.Counter
	scoresVerified      prometheus.Counter
	aggregationSkips    prometheus.Counter
}

// New creates a Metrics instance with its own registry, so tests can build
// isolated instances without collector name collisions.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "SQLite query latency by operation.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"op"}),
		leaderboardBuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_builds_total",
			Help:      "Full leaderboard recomputes served.",
		}),
		scoresSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_submitted_total",
			Help:      "Stage scores submitted or resubmitted.",
		}),
		scoresVerified: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_verified_total",
			Help:      "Stage scores verified by an official.",
		}),
		aggregationSkips: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_anomalies_total",
			Help:      "Score rows excluded from an aggregation as anomalous.",
		}),
	}
}

// Handler returns the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
// PRE: path is the route pattern, not the raw URL (bounded cardinality)
// POST: counter and histogram updated
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveQuery records one database call.
func (m *Metrics) ObserveQuery(op string, d time.Duration) {
	m.dbQueryDuration.WithLabelValues(op).Observe(d.Seconds())
}

// LeaderboardBuilt counts one full recompute.
func (m *Metrics) LeaderboardBuilt() { m.leaderboardBuilds.Inc() }

// ScoreSubmitted counts one stage-score submission.
func (m *Metrics) ScoreSubmitted() { m.scoresSubmitted.Inc() }

// ScoreVerified counts one verification.
func (m *Metrics) ScoreVerified() { m.scoresVerified.Inc() }

// AggregationAnomalies counts rows excluded from an aggregation.
func (m *Metrics) AggregationAnomalies(n int) {
	if n > 0 {
		m.aggregationSkips.Add(float64(n))
	}
}
