package cache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/pkg/geo"
	"Local-Flavor-Backend/pkg/metrics"
)

type (
	// RecipeCache stores resolved recipe sets by location key. A ttl of zero
	// keeps entries until they are invalidated.
	RecipeCache interface {
		Get(ctx context.Context, key string) ([]domain.Recipe, bool, error)
		Put(ctx context.Context, key string, at geo.Point, recipes []domain.Recipe) error
		Invalidate(ctx context.Context, key string) (bool, error)
		Purge(ctx context.Context) (int64, error)
	}

	recipeCache struct {
		cacheRepository CacheRepository
		ttl             time.Duration
		now             func() time.Time
	}
)

func NewRecipeCache(cacheRepository CacheRepository, ttl time.Duration) RecipeCache {
	return &recipeCache{
		cacheRepository: cacheRepository,
		ttl:             ttl,
		now:             time.Now,
	}
}

// CityKey keys a cache entry by resolved city name.
func CityKey(name string) string {
	return "city:" + strings.ToLower(strings.TrimSpace(name))
}

// CoordinateKey keys a cache entry by coordinates rounded to two decimals
// (roughly 1 km), so nearby queries share one entry.
func CoordinateKey(p geo.Point) string {
	return fmt.Sprintf("coords:%.2f,%.2f", round2(p.Lat), round2(p.Lng))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// avoid a distinct "-0.00" key
		return 0
	}
	return r
}

func (c *recipeCache) Get(ctx context.Context, key string) ([]domain.Recipe, bool, error) {
	entry, err := c.cacheRepository.GetByLocationName(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.CacheLookups.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, domain.NewPersistenceError("read recipe cache", err)
	}

	if c.ttl > 0 && c.now().Sub(entry.CreatedAt) > c.ttl {
		metrics.CacheLookups.WithLabelValues("expired").Inc()
		return nil, false, nil
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(entry.RecipeData), &recipes); err != nil || len(recipes) == 0 {
		metrics.CacheLookups.WithLabelValues("corrupt").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("discarding unreadable recipe cache entry")
		return nil, false, nil
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return recipes, true, nil
}

func (c *recipeCache) Put(ctx context.Context, key string, at geo.Point, recipes []domain.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return err
	}

	entry := &entities.RecipeCache{
		ID:           uuid.New(),
		LocationName: key,
		LocationLat:  at.Lat,
		LocationLng:  at.Lng,
		RecipeData:   string(data),
		CreatedAt:    c.now(),
	}

	if err := c.cacheRepository.Upsert(ctx, entry); err != nil {
		return domain.NewPersistenceError("write recipe cache", err)
	}
	return nil
}

func (c *recipeCache) Invalidate(ctx context.Context, key string) (bool, error) {
	n, err := c.cacheRepository.DeleteByLocationName(ctx, key)
	if err != nil {
		return false, domain.NewPersistenceError("invalidate recipe cache", err)
	}
	return n > 0, nil
}

func (c *recipeCache) Purge(ctx context.Context) (int64, error) {
	n, err := c.cacheRepository.DeleteAll(ctx)
	if err != nil {
		return 0, domain.NewPersistenceError("purge recipe cache", err)
	}
	logging.Ctx(ctx).Info().Int64("entries", n).Msg("recipe cache purged")
	return n, nil
}
