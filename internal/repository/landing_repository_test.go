package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepo(t *testing.T) (*LandingRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewLandingRepository(db), mock
}

var baseCols = []string{"id", "created_at", "updated_at"}

func cols(extra ...string) []string {
	return append(append([]string{}, baseCols...), extra...)
}

func TestLandingRepository_LoadLanding(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	brandID := uuid.New()
	shoesID := uuid.New()
	bagsID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE url_key = \$1`).
		WillReturnRows(sqlmock.NewRows(cols("url_key", "value", "display_name", "image")).
			AddRow(brandID.String(), now, now, "nike", "Nike", "Nike Inc", "/nike.png"))

	mock.ExpectQuery(`SELECT \* FROM "brand_landing_configs" WHERE brand_id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols("brand_id", "enabled", "color", "banner_name", "custom_page_css", "custom_banner_html")).
			AddRow(uuid.NewString(), now, now, brandID.String(), true, "#111111", "nike", "", ""))

	catCols := cols("brand_id", "parent_id", "entity_id", "name", "url_key", "include_in_landing", "position")
	mock.ExpectQuery(`SELECT \* FROM "landing_categories" WHERE brand_id = \$1 AND parent_id IS NULL ORDER BY position asc, created_at asc`).
		WillReturnRows(sqlmock.NewRows(catCols).
			AddRow(shoesID.String(), now, now, brandID.String(), nil, 10, "Shoes", "shoes", "", 0).
			AddRow(bagsID.String(), now, now, brandID.String(), nil, 11, "Bags", "bags", "0", 1))

	mock.ExpectQuery(`SELECT \* FROM "landing_categories" WHERE "landing_categories"."parent_id" IN`).
		WillReturnRows(sqlmock.NewRows(catCols).
			AddRow(uuid.NewString(), now, now, brandID.String(), shoesID.String(), 20, "Running", "running", "1", 0))

	data, err := repo.LoadLanding(context.Background(), "nike")
	require.NoError(t, err)

	assert.Equal(t, "Nike", data.Brand.Value)
	assert.Equal(t, "Nike Inc", data.Brand.DisplayName)
	assert.True(t, data.Enabled)
	assert.Equal(t, "#111111", data.Config.Color)

	require.Len(t, data.Categories, 2)
	assert.Equal(t, "Shoes", data.Categories[0].Name)
	assert.Equal(t, int64(10), data.Categories[0].EntityID)
	require.Len(t, data.Categories[0].Children, 1)
	assert.Equal(t, "running", data.Categories[0].Children[0].URLKey)
	assert.Equal(t, "0", data.Categories[1].IncludeInLanding)
	assert.Empty(t, data.Categories[1].Children)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLandingRepository_MissingConfigDefaultsEnabled(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()
	brandID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "brands"`).
		WillReturnRows(sqlmock.NewRows(cols("url_key", "value", "display_name", "image")).
			AddRow(brandID.String(), now, now, "acme", "Acme", "Acme", ""))
	mock.ExpectQuery(`SELECT \* FROM "brand_landing_configs"`).
		WillReturnRows(sqlmock.NewRows(cols("brand_id")))
	mock.ExpectQuery(`SELECT \* FROM "landing_categories"`).
		WillReturnRows(sqlmock.NewRows(cols("brand_id", "parent_id", "entity_id", "name", "url_key")))

	data, err := repo.LoadLanding(context.Background(), "acme")
	require.NoError(t, err)
	assert.True(t, data.Enabled)
	assert.Empty(t, data.Categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLandingRepository_BrandNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "brands"`).
		WillReturnRows(sqlmock.NewRows(cols("url_key")))

	_, err := repo.LoadLanding(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestLandingRepository_QueryError(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "brands"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.LoadLanding(context.Background(), "nike")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBrandNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}
