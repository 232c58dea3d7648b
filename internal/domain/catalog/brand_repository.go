package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
)

// BrandRepository defines the interface for brand persistence
type BrandRepository interface {
	// FindByID finds a brand by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Brand, error)

	// FindByName finds a brand by exact name, matched case-insensitively
	FindByName(ctx context.Context, name string) (*Brand, error)

	// FindAll finds all brands matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Brand, error)

	// Save creates or updates a brand
	Save(ctx context.Context, brand *Brand) error

	// Upsert inserts the brand if no brand with the same normalized name
	// exists, otherwise returns the existing one. The returned brand is
	// always the persisted row, whether freshly inserted or pre-existing.
	Upsert(ctx context.Context, brand *Brand) (*Brand, error)

	// Delete deletes a brand
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts brands matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
