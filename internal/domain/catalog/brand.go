package catalog

import (
	"strings"
	"time"

	"github.com/recell/backend/internal/domain/shared"
)

// MaxBrandNameLength is the maximum length of a brand name
const MaxBrandNameLength = 100

// Brand represents a phone brand in the catalog (e.g. Apple, Samsung).
// Brand names are unique; lookups are case-insensitive so that "apple"
// and "Apple" resolve to the same brand.
type Brand struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Brand) TableName() string {
	return "brands"
}

// NewBrand creates a new brand with a trimmed name
func NewBrand(name string) (*Brand, error) {
	trimmed, err := validateBrandName(name)
	if err != nil {
		return nil, err
	}

	brand := &Brand{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              trimmed,
	}

	brand.AddDomainEvent(NewBrandCreatedEvent(brand))

	return brand, nil
}

// Rename changes the brand name
func (b *Brand) Rename(name string) error {
	trimmed, err := validateBrandName(name)
	if err != nil {
		return err
	}

	b.Name = trimmed
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// NormalizedName returns the name normalized for case-insensitive matching
func (b *Brand) NormalizedName() string {
	return NormalizeBrandName(b.Name)
}

// Matches reports whether the given free-text name refers to this brand
func (b *Brand) Matches(name string) bool {
	return b.NormalizedName() == NormalizeBrandName(name)
}

// NormalizeBrandName trims and lowercases a brand name for comparison.
// The stored name keeps its original casing; only lookups normalize.
func NormalizeBrandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateBrandName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot be empty")
	}
	if len(trimmed) > MaxBrandNameLength {
		return "", shared.NewDomainError("VALIDATION_ERROR", "Brand name cannot exceed 100 characters")
	}
	return trimmed, nil
}
