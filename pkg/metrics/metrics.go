package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecipeResolutions counts which pipeline tier answered a location query.
	RecipeResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_resolutions_total",
		Help: "Location queries answered, by resolution tier.",
	}, []string{"tier"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_cache_lookups_total",
		Help: "Recipe cache lookups by result (hit, miss, expired, corrupt).",
	}, []string{"result"})

	GeneratorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipe_generator_requests_total",
		Help: "Calls to the external recipe generator by outcome.",
	}, []string{"outcome"})

	// GeneratorBreakerState is 0 closed, 1 half-open, 2 open.
	GeneratorBreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "recipe_generator_circuit_breaker_state",
		Help: "State of the generator circuit breaker.",
	})

	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moderation_decisions_total",
		Help: "Moderation decisions by resulting status.",
	}, []string{"status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
