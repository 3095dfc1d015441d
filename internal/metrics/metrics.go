// Package metrics provides the centralized Prometheus registry for the edge
// detection engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	GamesEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "games_evaluated_total",
		Help:      "Total number of game snapshots evaluated",
	})
	SnapshotsRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "snapshots_rejected_total",
		Help:      "Total number of snapshots rejected for missing required fields",
	})
	RecommendationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "recommendations_total",
		Help:      "Total number of playable stake recommendations emitted",
	})
	RatingUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "rating_updates_total",
		Help:      "Total number of power rating updates applied",
	})
	RatingUpdatesRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "rating_updates_rejected_total",
		Help:      "Total number of stale or replayed rating updates rejected",
	})
	EdgesByBucket = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "edges_by_bucket_total",
		Help:      "Edges evaluated, labelled by confidence bucket",
	}, []string{"bucket"})
)

// Gauge metrics
var (
	CurrentBankroll = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "current_bankroll",
		Help:      "Current bankroll in currency units",
	})
	TrackedTeams = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "tracked_teams",
		Help:      "Number of teams with a power rating",
	})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of a full batch evaluation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(GamesEvaluatedTotal)
		registry.MustRegister(SnapshotsRejectedTotal)
		registry.MustRegister(RecommendationsTotal)
		registry.MustRegister(RatingUpdatesTotal)
		registry.MustRegister(RatingUpdatesRejectedTotal)
		registry.MustRegister(EdgesByBucket)

		registry.MustRegister(CurrentBankroll)
		registry.MustRegister(TrackedTeams)

		registry.MustRegister(EvaluationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
