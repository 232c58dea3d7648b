package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/catalog"
	"github.com/recell/backend/internal/domain/shared"
)

// BrandResolver resolves free-text brand names to catalog brand IDs,
// creating missing brands on the fly. Each resolution session memoizes
// lookups so a batch touching the same brand many times costs at most
// one repository round trip per distinct name.
type BrandResolver struct {
	brandRepo catalog.BrandRepository
}

// NewBrandResolver creates a new BrandResolver
func NewBrandResolver(brandRepo catalog.BrandRepository) *BrandResolver {
	return &BrandResolver{
		brandRepo: brandRepo,
	}
}

// Session starts a resolution session with a fresh name cache.
// Sessions are not safe for concurrent use.
func (r *BrandResolver) Session() *BrandResolution {
	return &BrandResolution{
		resolver: r,
		cache:    make(map[string]uuid.UUID),
	}
}

// BrandResolution is a per-batch brand name cache. Names are keyed by
// their trimmed, lowercased form, so "Apple", "apple" and " APPLE "
// all resolve to the same brand.
type BrandResolution struct {
	resolver *BrandResolver
	cache    map[string]uuid.UUID
}

// Resolve returns the brand ID for a name, inserting the brand if it
// does not exist yet. The insert is an idempotent upsert keyed on the
// normalized name, so concurrent resolutions of a new name converge on
// one row.
func (res *BrandResolution) Resolve(ctx context.Context, name string) (uuid.UUID, error) {
	normalized := catalog.NormalizeBrandName(name)
	if normalized == "" {
		return uuid.Nil, shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot be empty")
	}

	if id, ok := res.cache[normalized]; ok {
		return id, nil
	}

	brand, err := catalog.NewBrand(name)
	if err != nil {
		return uuid.Nil, err
	}

	persisted, err := res.resolver.brandRepo.Upsert(ctx, brand)
	if err != nil {
		return uuid.Nil, err
	}

	res.cache[normalized] = persisted.ID
	return persisted.ID, nil
}
