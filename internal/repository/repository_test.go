package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Product{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func TestCategoryRepository_CreateAndDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	c := &model.Category{Slug: "epp", Name: "EPP", Description: "Protección"}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotEmpty(t, c.ID)

	err := repo.Create(ctx, &model.Category{Slug: "epp", Name: "Otra", Description: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	got, err := repo.FindBySlug(ctx, "epp")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCategoryRepository_UpdateNeverTouchesSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	c := &model.Category{Slug: "calzado", Name: "Calzado", Description: "Botines"}
	require.NoError(t, repo.Create(ctx, c))

	err := repo.Update(ctx, &model.Category{ID: c.ID, Slug: "otro-slug", Name: "Calzado de seguridad", Description: "Botines", Emoji: strPtr("🥾")})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "calzado", got.Slug)
	assert.Equal(t, "Calzado de seguridad", got.Name)
	assert.Equal(t, "🥾", got.DisplayEmoji())
}

func TestCategoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &model.Category{ID: "missing", Name: "n", Description: "d"}), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)
}

func TestProductRepository_ReplaceAllPreservesOrderAndCounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProductRepository(db)

	first := []model.Product{
		{ID: 1, Name: "Camisa", Images: []string{"a.jpg"}, Description: "d", DetailedDescription: "dd", Category: "uniformes"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, first, nil))

	second := []model.Product{
		{ID: 9, Name: "Casco", Images: []string{"c.jpg", "c2.jpg"}, Description: "d", DetailedDescription: "dd", Features: []string{"ABS"}, Category: "epp"},
		{ID: 5, Name: "Botín", Images: []string{"b.jpg"}, Description: "d", DetailedDescription: "dd", Category: "calzado"},
		{ID: 2, Name: "Guantes", Images: []string{"g.jpg"}, Description: "d", DetailedDescription: "dd", Category: "epp"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, second, nil))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{9, 5, 2}, []int64{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, []string{"c.jpg", "c2.jpg"}, list[0].Images)
	assert.Equal(t, []string{"ABS"}, list[0].Features)

	n, err := repo.CountByCategory(ctx, "epp")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountByCategory(ctx, "uniformes")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductRepository_ReplaceAllRollsBackOnCategoryConflict(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	products := NewProductRepository(db)
	categories := NewCategoryRepository(db)

	require.NoError(t, categories.Create(ctx, &model.Category{Slug: "epp", Name: "EPP", Description: "d"}))
	require.NoError(t, products.ReplaceAll(ctx, []model.Product{
		{ID: 1, Name: "Casco", Images: []string{"c.jpg"}, Description: "d", DetailedDescription: "dd", Category: "epp"},
	}, nil))

	err := products.ReplaceAll(ctx,
		[]model.Product{{ID: 2, Name: "Nuevo", Images: []string{"n.jpg"}, Description: "d", DetailedDescription: "dd", Category: "epp"}},
		[]model.Category{
			{Slug: "epp", Name: "EPP", Description: "d"},
			{Slug: "epp", Name: "EPP bis", Description: "d"},
		})
	assert.ErrorIs(t, err, ErrDuplicate)

	list, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Casco", list[0].Name)

	cats, err := categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestProductRepository_ReplaceAllRollsBackOnStoreError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "products"`)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err = NewProductRepository(db).ReplaceAll(context.Background(), []model.Product{
		{ID: 1, Name: "Casco", Images: []string{"c.jpg"}, Description: "d", DetailedDescription: "dd", Category: "epp"},
	}, nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
