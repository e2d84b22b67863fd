package recipe

import (
	"context"
	"errors"
	"sort"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/pkg/geo"
	"Local-Flavor-Backend/pkg/metrics"
)

var errNoStrategyResult = errors.New("no resolution strategy produced recipes")

type (
	Query struct {
		Point    geo.Point
		RadiusKM float64
	}

	// Strategy is one tier of the resolution chain. Returning an empty slice
	// with a nil error hands the query to the next tier.
	Strategy interface {
		Name() string
		Resolve(ctx context.Context, q Query) ([]domain.Recipe, error)
	}

	Resolution struct {
		Recipes []domain.Recipe
		Source  string
	}

	Pipeline struct {
		strategies []Strategy
	}
)

func NewPipeline(strategies ...Strategy) *Pipeline {
	return &Pipeline{strategies: strategies}
}

// Resolve walks the strategies in order and returns the first non-empty
// result, stamped with distances from the query point and sorted nearest first.
func (p *Pipeline) Resolve(ctx context.Context, q Query) (Resolution, error) {
	var lastErr error

	for _, s := range p.strategies {
		recipes, err := s.Resolve(ctx, q)
		if err != nil {
			lastErr = err
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("strategy", s.Name()).
				Float64("lat", q.Point.Lat).
				Float64("lng", q.Point.Lng).
				Msg("recipe resolution strategy failed")
			continue
		}
		if len(recipes) == 0 {
			continue
		}

		metrics.RecipeResolutions.WithLabelValues(s.Name()).Inc()
		return Resolution{
			Recipes: stampDistances(q.Point, recipes),
			Source:  s.Name(),
		}, nil
	}

	if lastErr == nil {
		lastErr = errNoStrategyResult
	}
	return Resolution{}, &domain.PersistenceError{Op: "resolve recipes", Err: lastErr}
}

func stampDistances(from geo.Point, recipes []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(recipes))
	copy(out, recipes)

	for i := range out {
		out[i].Distance = geo.Distance(from, geo.Point{Lat: out[i].LocationLat, Lng: out[i].LocationLng})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}
