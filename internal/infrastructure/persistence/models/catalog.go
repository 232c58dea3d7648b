package models

import (
	"github.com/recell/backend/internal/domain/catalog"
)

// BrandModel is the persistence model for the Brand aggregate root.
// NameNormalized carries the trimmed, lowercased name and backs the
// unique index that makes brand creation an idempotent upsert.
type BrandModel struct {
	AggregateModel
	Name           string `gorm:"type:varchar(100);not null"`
	NameNormalized string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (BrandModel) TableName() string {
	return "brands"
}

// ToDomain converts the persistence model to a domain Brand entity.
func (m *BrandModel) ToDomain() *catalog.Brand {
	return &catalog.Brand{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
	}
}

// FromDomain populates the persistence model from a domain Brand entity.
func (m *BrandModel) FromDomain(b *catalog.Brand) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.Name = b.Name
	m.NameNormalized = b.NormalizedName()
}

// BrandModelFromDomain creates a new persistence model from a domain Brand entity.
func BrandModelFromDomain(b *catalog.Brand) *BrandModel {
	m := &BrandModel{}
	m.FromDomain(b)
	return m
}
