package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/catalog"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrand(t *testing.T, name string) *catalog.Brand {
	t.Helper()
	brand, err := catalog.NewBrand(name)
	require.NoError(t, err)
	return brand
}

func TestGormBrandRepository_Upsert(t *testing.T) {
	t.Run("inserts a new brand", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))
		brand := newTestBrand(t, "Apple")

		persisted, err := repo.Upsert(context.Background(), brand)

		require.NoError(t, err)
		assert.Equal(t, brand.ID, persisted.ID)
		assert.Equal(t, "Apple", persisted.Name)
	})

	t.Run("returns existing brand on normalized name conflict", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))
		first, err := repo.Upsert(context.Background(), newTestBrand(t, "Apple"))
		require.NoError(t, err)

		second, err := repo.Upsert(context.Background(), newTestBrand(t, "  APPLE "))

		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Apple", second.Name)

		count, err := repo.Count(context.Background(), shared.DefaultFilter())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("distinct names create distinct brands", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))
		apple, err := repo.Upsert(context.Background(), newTestBrand(t, "Apple"))
		require.NoError(t, err)
		samsung, err := repo.Upsert(context.Background(), newTestBrand(t, "Samsung"))
		require.NoError(t, err)

		assert.NotEqual(t, apple.ID, samsung.ID)
	})
}

func TestGormBrandRepository_FindByName(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))
		created, err := repo.Upsert(context.Background(), newTestBrand(t, "Xiaomi"))
		require.NoError(t, err)

		found, err := repo.FindByName(context.Background(), "  xiaomi ")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Xiaomi", found.Name)
	})

	t.Run("returns NOT_FOUND for unknown name", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))

		_, err := repo.FindByName(context.Background(), "Nokia")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestGormBrandRepository_FindByID(t *testing.T) {
	t.Run("returns NOT_FOUND for unknown id", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))

		_, err := repo.FindByID(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestGormBrandRepository_Delete(t *testing.T) {
	t.Run("deletes an existing brand", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))
		brand, err := repo.Upsert(context.Background(), newTestBrand(t, "Google"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(context.Background(), brand.ID))

		_, err = repo.FindByID(context.Background(), brand.ID)
		assert.Error(t, err)
	})

	t.Run("returns NOT_FOUND for unknown id", func(t *testing.T) {
		repo := NewGormBrandRepository(setupTestDB(t))

		err := repo.Delete(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
