package recipe

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/pkg/cache"
	"Local-Flavor-Backend/pkg/city"
	"Local-Flavor-Backend/pkg/curated"
	"Local-Flavor-Backend/pkg/generator"
)

const (
	TierStore     = "store"
	TierCity      = "city"
	TierGenerator = "generator"
	TierFailsafe  = "failsafe"

	failsafeSize = 3
)

// StoreStrategy answers with approved recipes inside the search radius.
type StoreStrategy struct {
	recipeRepository RecipeRepository
}

func NewStoreStrategy(recipeRepository RecipeRepository) *StoreStrategy {
	return &StoreStrategy{recipeRepository: recipeRepository}
}

func (s *StoreStrategy) Name() string { return TierStore }

func (s *StoreStrategy) Resolve(ctx context.Context, q Query) ([]domain.Recipe, error) {
	rows, err := s.recipeRepository.FindApprovedNear(ctx, q.Point, q.RadiusKM)
	if err != nil {
		return nil, domain.NewPersistenceError("find recipes near", err)
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for i := range rows {
		r := ToDomainRecipe(&rows[i].Recipe)
		r.Distance = rows[i].Distance
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// CityStrategy snaps the query to the nearest known city and serves that
// city's curated dishes, cached under the city key.
type CityStrategy struct {
	directory        *city.Directory
	recipeCache      cache.RecipeCache
	recipeRepository RecipeRepository
}

func NewCityStrategy(directory *city.Directory, recipeCache cache.RecipeCache, recipeRepository RecipeRepository) *CityStrategy {
	return &CityStrategy{
		directory:        directory,
		recipeCache:      recipeCache,
		recipeRepository: recipeRepository,
	}
}

func (s *CityStrategy) Name() string { return TierCity }

func (s *CityStrategy) Resolve(ctx context.Context, q Query) ([]domain.Recipe, error) {
	nearest, _, ok := s.directory.FindNearest(q.Point)
	if !ok {
		return nil, nil
	}

	key := cache.CityKey(nearest.Name)
	cached, hit, err := s.recipeCache.Get(ctx, key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("recipe cache read failed")
	} else if hit && len(cached) > 0 {
		return cached, nil
	}

	recipes := curated.ForCity(nearest.Name)
	if len(recipes) == 0 {
		return s.storedCityRecipes(ctx, nearest.Name, q)
	}

	recipes = stampDistances(q.Point, recipes)
	if err := s.recipeCache.Put(ctx, key, nearest.Location, recipes); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("recipe cache write failed")
	}
	return recipes, nil
}

// storedCityRecipes lists approved store recipes filed under the city and keeps
// those within the query radius. The result depends on the caller's point, so
// it is not cached under the city key.
func (s *CityStrategy) storedCityRecipes(ctx context.Context, name string, q Query) ([]domain.Recipe, error) {
	if s.recipeRepository == nil {
		return nil, nil
	}

	rows, err := s.recipeRepository.GetApprovedRecipesByCity(ctx, name)
	if err != nil {
		return nil, domain.NewPersistenceError("list recipes by city", err)
	}

	recipes := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, ToDomainRecipe(row))
	}

	within := make([]domain.Recipe, 0, len(recipes))
	for _, r := range stampDistances(q.Point, recipes) {
		if r.Distance <= q.RadiusKM {
			within = append(within, r)
		}
	}
	if len(within) == 0 {
		return nil, nil
	}
	return within, nil
}

type GeneratorStrategyConfig struct {
	Timeout time.Duration
	// Persist stores successful generator output as approved api recipes.
	Persist bool
}

// GeneratorStrategy synthesizes dishes for places nothing else covers. A nil
// primary generator, or any failure from it, falls back to the template.
type GeneratorStrategy struct {
	directory        *city.Directory
	recipeCache      cache.RecipeCache
	primary          generator.Generator
	fallback         generator.Generator
	recipeRepository RecipeRepository
	cfg              GeneratorStrategyConfig
	now              func() time.Time
}

func NewGeneratorStrategy(
	directory *city.Directory,
	recipeCache cache.RecipeCache,
	primary generator.Generator,
	fallback generator.Generator,
	recipeRepository RecipeRepository,
	cfg GeneratorStrategyConfig,
) *GeneratorStrategy {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &GeneratorStrategy{
		directory:        directory,
		recipeCache:      recipeCache,
		primary:          primary,
		fallback:         fallback,
		recipeRepository: recipeRepository,
		cfg:              cfg,
		now:              time.Now,
	}
}

func (s *GeneratorStrategy) Name() string { return TierGenerator }

func (s *GeneratorStrategy) Resolve(ctx context.Context, q Query) ([]domain.Recipe, error) {
	key := cache.CoordinateKey(q.Point)
	cached, hit, err := s.recipeCache.Get(ctx, key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("recipe cache read failed")
	} else if hit && len(cached) > 0 {
		return cached, nil
	}

	req := generator.Request{Place: city.RegionLabel(q.Point), Location: q.Point}
	var country string
	if nearest, _, ok := s.directory.FindNearest(q.Point); ok {
		req.Place = nearest.Name
		country = nearest.Country
	}

	res, generated, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	recipes := s.toRecipes(req, country, res)
	if generated && s.cfg.Persist && s.recipeRepository != nil {
		s.persist(ctx, recipes)
	}

	if err := s.recipeCache.Put(ctx, key, q.Point, recipes); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("recipe cache write failed")
	}
	return recipes, nil
}

// generate reports whether the result came from the primary generator.
func (s *GeneratorStrategy) generate(ctx context.Context, req generator.Request) (generator.Result, bool, error) {
	if s.primary != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		res, err := s.primary.Generate(callCtx, req)
		cancel()
		if err == nil && len(res.Dishes) > 0 {
			return res, true, nil
		}
		logging.Ctx(ctx).Warn().Err(err).Str("place", req.Place).Msg("recipe generator failed, using template")
	}

	res, err := s.fallback.Generate(ctx, req)
	if err != nil {
		return generator.Result{}, false, err
	}
	return res, false, nil
}

func (s *GeneratorStrategy) toRecipes(req generator.Request, country string, res generator.Result) []domain.Recipe {
	cityName := req.Place
	if res.City != "" {
		cityName = res.City
	}
	if res.Country != "" {
		country = res.Country
	}

	locationName := cityName
	if country != "" {
		locationName = fmt.Sprintf("%s, %s", cityName, country)
	}

	approvedAt := s.now().UTC()
	recipes := make([]domain.Recipe, 0, len(res.Dishes))
	for _, dish := range res.Dishes {
		recipes = append(recipes, domain.Recipe{
			ID:           uuid.New().String(),
			Name:         dish.Name,
			Ingredients:  dish.Ingredients,
			Instructions: dish.Instructions,
			CulturalNote: dish.CulturalNote,
			LocationLat:  req.Location.Lat,
			LocationLng:  req.Location.Lng,
			LocationName: locationName,
			City:         cityName,
			Country:      country,
			SourceType:   domain.SourceAPI,
			IsApproved:   true,
			ApprovalDate: &approvedAt,
			CreatedAt:    approvedAt,
		})
	}
	return recipes
}

func (s *GeneratorStrategy) persist(ctx context.Context, recipes []domain.Recipe) {
	rows := make([]*entities.Recipe, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, ToEntity(r))
	}
	if err := s.recipeRepository.CreateRecipes(ctx, rows); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Int("count", len(rows)).Msg("failed to persist generated recipes")
	}
}

// FailsafeStrategy draws a few curated recipes at random. It never fails.
type FailsafeStrategy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewFailsafeStrategy(rng *rand.Rand) *FailsafeStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FailsafeStrategy{rng: rng}
}

func (s *FailsafeStrategy) Name() string { return TierFailsafe }

func (s *FailsafeStrategy) Resolve(_ context.Context, _ Query) ([]domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return curated.Random(failsafeSize, s.rng), nil
}
