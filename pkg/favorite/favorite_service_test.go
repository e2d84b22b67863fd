package favorite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/recipe"
)

type memoryFavorites struct {
	rows []*entities.Favorite
}

func (m *memoryFavorites) AddFavorite(_ context.Context, f *entities.Favorite) error {
	for _, row := range m.rows {
		if row.UserID == f.UserID && row.RecipeID == f.RecipeID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.ID = uuid.New()
	f.CreatedAt = time.Now()
	m.rows = append(m.rows, f)
	return nil
}

func (m *memoryFavorites) RemoveFavorite(_ context.Context, userID string, id string) (int64, error) {
	for i, row := range m.rows {
		if row.UserID.String() == userID && (row.ID.String() == id || row.RecipeID.String() == id) {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memoryFavorites) GetFavorites(_ context.Context, userID string) ([]entities.Favorite, error) {
	var out []entities.Favorite
	for _, row := range m.rows {
		if row.UserID.String() == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

type approvedRecipes struct {
	recipe.RecipeRepository
	byID map[string]*entities.Recipe
}

func (a approvedRecipes) GetApprovedRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := a.byID[id]
	if !ok || !r.IsApproved {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func newFavoriteFixture() (*memoryFavorites, FavoriteService, *entities.Recipe) {
	dish := &entities.Recipe{ID: uuid.New(), Name: "Lomo Saltado", IsApproved: true, SourceType: domain.SourceCurated}
	favorites := &memoryFavorites{}
	recipes := approvedRecipes{byID: map[string]*entities.Recipe{dish.ID.String(): dish}}
	return favorites, NewFavoriteService(favorites, recipes), dish
}

func TestFavoriteService_DuplicateAddConflicts(t *testing.T) {
	store, svc, dish := newFavoriteFixture()
	ctx := context.Background()
	userID := uuid.NewString()
	req := domain.AddFavoriteRequest{RecipeID: dish.ID.String()}

	fav, err := svc.AddFavorite(ctx, req, userID)
	require.NoError(t, err)
	assert.Equal(t, dish.ID.String(), fav.RecipeID)
	require.NotNil(t, fav.Recipe)
	assert.Equal(t, "Lomo Saltado", fav.Recipe.Name)

	_, err = svc.AddFavorite(ctx, req, userID)
	assert.ErrorIs(t, err, domain.ErrFavoriteExists)
	assert.Len(t, store.rows, 1)
}

func TestFavoriteService_AddUnknownRecipe(t *testing.T) {
	store, svc, _ := newFavoriteFixture()

	_, err := svc.AddFavorite(context.Background(), domain.AddFavoriteRequest{RecipeID: uuid.NewString()}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	assert.Empty(t, store.rows)
}

func TestFavoriteService_RemoveIsScopedToOwner(t *testing.T) {
	store, svc, dish := newFavoriteFixture()
	ctx := context.Background()
	owner := uuid.NewString()

	fav, err := svc.AddFavorite(ctx, domain.AddFavoriteRequest{RecipeID: dish.ID.String()}, owner)
	require.NoError(t, err)

	err = svc.RemoveFavorite(ctx, fav.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	assert.Len(t, store.rows, 1)

	require.NoError(t, svc.RemoveFavorite(ctx, fav.ID, owner))
	assert.Empty(t, store.rows)

	err = svc.RemoveFavorite(ctx, fav.ID, owner)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestFavoriteService_GetFavoritesMapsRecipes(t *testing.T) {
	store, svc, dish := newFavoriteFixture()
	owner := uuid.New()
	store.rows = append(store.rows, &entities.Favorite{ID: uuid.New(), UserID: owner, RecipeID: dish.ID, Recipe: dish})

	favs, err := svc.GetFavorites(context.Background(), owner.String())
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, dish.ID.String(), favs[0].Recipe.ID)

	_, err = svc.GetFavorites(context.Background(), "me")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
