package recipe

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/generator"
	"Local-Flavor-Backend/pkg/geo"
)

type fakeRecipeRepository struct {
	recipes   map[string]*entities.Recipe
	near      []entities.RecipeWithDistance
	nearErr   error
	cityErr   error
	createErr error
	created   []*entities.Recipe
	updates   map[string]interface{}
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: map[string]*entities.Recipe{}}
}

func (f *fakeRecipeRepository) WithTx(*gorm.DB) RecipeRepository { return f }

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	f.recipes[r.ID.String()] = r
	return nil
}

func (f *fakeRecipeRepository) CreateRecipes(ctx context.Context, rs []*entities.Recipe) error {
	for _, r := range rs {
		if err := f.CreateRecipe(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeRepository) GetApprovedRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	r, err := f.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsApproved {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepository) FindApprovedNear(context.Context, geo.Point, float64) ([]entities.RecipeWithDistance, error) {
	return f.near, f.nearErr
}

func (f *fakeRecipeRepository) GetApprovedRecipesByCity(_ context.Context, city string) ([]*entities.Recipe, error) {
	if f.cityErr != nil {
		return nil, f.cityErr
	}
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.IsApproved && strings.EqualFold(r.City, city) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, _ string, updates map[string]interface{}) error {
	f.updates = updates
	return nil
}

func (f *fakeRecipeRepository) UpdateApproval(_ context.Context, id string, approved bool, at time.Time) (int64, error) {
	r, ok := f.recipes[id]
	if !ok {
		return 0, nil
	}
	r.IsApproved = approved
	r.ApprovalDate = &at
	return 1, nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) (int64, error) {
	if _, ok := f.recipes[id]; !ok {
		return 0, nil
	}
	delete(f.recipes, id)
	return 1, nil
}

func (f *fakeRecipeRepository) CountRecipes(context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

type memoryCache struct {
	entries map[string][]domain.Recipe
	getErr  error
	putErr  error
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]domain.Recipe{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]domain.Recipe, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	r, ok := m.entries[key]
	return r, ok, nil
}

func (m *memoryCache) Put(_ context.Context, key string, _ geo.Point, recipes []domain.Recipe) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[key] = recipes
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

func (m *memoryCache) Purge(context.Context) (int64, error) {
	n := int64(len(m.entries))
	m.entries = map[string][]domain.Recipe{}
	return n, nil
}

type countingGenerator struct {
	calls int
	err   error
	res   generator.Result
}

func (c *countingGenerator) Generate(context.Context, generator.Request) (generator.Result, error) {
	c.calls++
	return c.res, c.err
}

// blockingGenerator never answers on its own and only returns once the
// caller's context is done.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, _ generator.Request) (generator.Result, error) {
	<-ctx.Done()
	return generator.Result{}, ctx.Err()
}
