package rating

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestRatingRepository_UpsertReportsInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)
	userID, recipeID := uuid.NewString(), uuid.NewString()

	mock.ExpectQuery(`(?s)INSERT INTO ratings .* ON CONFLICT \(user_id, recipe_id\)\s+DO UPDATE SET rating = EXCLUDED.rating.* RETURNING \(xmax = 0\) AS inserted`).
		WithArgs(userID, recipeID, 4, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(false))

	inserted, err := repo.UpsertRating(context.Background(), userID, recipeID, 4)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_GetAggregate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)
	recipeID := uuid.NewString()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS average_rating, COUNT\(\*\) AS rating_count FROM "ratings" WHERE recipe_id = \$1`).
		WithArgs(recipeID).
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "rating_count"}).AddRow(4.5, 2))

	agg, err := repo.GetAggregate(context.Background(), recipeID)
	require.NoError(t, err)
	assert.Equal(t, Aggregate{AverageRating: 4.5, RatingCount: 2}, agg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
