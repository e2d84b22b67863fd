package generator

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/pkg/metrics"
)

const serviceName = "recipe generator"

type (
	GuardConfig struct {
		Name string
		// RequestsPerSecond caps upstream calls; zero or less disables pacing.
		RequestsPerSecond float64
		Burst             int
		// ConsecutiveFailures trips the breaker open.
		ConsecutiveFailures uint32
		OpenTimeout         time.Duration
	}

	// Guarded wraps a Generator with pacing and a circuit breaker and turns
	// every failure into a domain.UpstreamError.
	Guarded struct {
		next    Generator
		breaker *gobreaker.CircuitBreaker[Result]
		limiter *rate.Limiter
	}
)

func NewGuarded(next Generator, cfg GuardConfig) *Guarded {
	if cfg.Name == "" {
		cfg.Name = "recipe-generator"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = time.Minute
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	threshold := cfg.ConsecutiveFailures
	breaker := gobreaker.NewCircuitBreaker[Result](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.GeneratorBreakerState.Set(float64(to))
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("generator circuit breaker state changed")
		},
	})

	return &Guarded{
		next:    next,
		breaker: breaker,
		limiter: rate.NewLimiter(limit, cfg.Burst),
	}
}

func (g *Guarded) Generate(ctx context.Context, req Request) (Result, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		metrics.GeneratorRequests.WithLabelValues("throttled").Inc()
		return Result{}, domain.NewUpstreamError(serviceName, err)
	}

	res, err := g.breaker.Execute(func() (Result, error) {
		return g.next.Generate(ctx, req)
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.GeneratorRequests.WithLabelValues(outcome).Inc()
		return Result{}, domain.NewUpstreamError(serviceName, err)
	}

	metrics.GeneratorRequests.WithLabelValues("success").Inc()
	return res, nil
}

func (g *Guarded) State() gobreaker.State {
	return g.breaker.State()
}
