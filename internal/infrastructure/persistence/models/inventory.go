package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryUnitModel is the persistence model for the InventoryUnit
// aggregate root. The IMEI column is indexed but not unique at the
// schema level because units without an IMEI store the empty string;
// uniqueness of non-empty IMEIs is enforced by the receiving
// transaction and a partial unique index in the migration.
type InventoryUnitModel struct {
	AggregateModel
	BrandID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Model         string    `gorm:"type:varchar(200);not null"`
	Color         string    `gorm:"type:varchar(50)"`
	IMEI          string    `gorm:"column:imei;type:varchar(20);index"`
	Condition     string    `gorm:"type:varchar(50);not null"`
	BatteryHealth *int
	StorageGB     *int                 `gorm:"column:storage_gb"`
	RAMGB         *int                 `gorm:"column:ram_gb"`
	CostPrice     decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	SellingPrice  decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Status        inventory.UnitStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	SupplierID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	PurchaseDate  time.Time            `gorm:"not null"`
	SourceOrderID *uuid.UUID           `gorm:"type:uuid;index"`
	Notes         string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InventoryUnitModel) TableName() string {
	return "inventory_units"
}

// ToDomain converts the persistence model to a domain InventoryUnit entity.
func (m *InventoryUnitModel) ToDomain() *inventory.InventoryUnit {
	return &inventory.InventoryUnit{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BrandID:           m.BrandID,
		Model:             m.Model,
		Color:             m.Color,
		IMEI:              m.IMEI,
		Condition:         m.Condition,
		BatteryHealth:     m.BatteryHealth,
		StorageGB:         m.StorageGB,
		RAMGB:             m.RAMGB,
		CostPrice:         m.CostPrice,
		SellingPrice:      m.SellingPrice,
		Status:            m.Status,
		SupplierID:        m.SupplierID,
		PurchaseDate:      m.PurchaseDate,
		SourceOrderID:     m.SourceOrderID,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain InventoryUnit entity.
func (m *InventoryUnitModel) FromDomain(u *inventory.InventoryUnit) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.BrandID = u.BrandID
	m.Model = u.Model
	m.Color = u.Color
	m.IMEI = u.IMEI
	m.Condition = u.Condition
	m.BatteryHealth = u.BatteryHealth
	m.StorageGB = u.StorageGB
	m.RAMGB = u.RAMGB
	m.CostPrice = u.CostPrice
	m.SellingPrice = u.SellingPrice
	m.Status = u.Status
	m.SupplierID = u.SupplierID
	m.PurchaseDate = u.PurchaseDate
	m.SourceOrderID = u.SourceOrderID
	m.Notes = u.Notes
}

// InventoryUnitModelFromDomain creates a new persistence model from a domain InventoryUnit entity.
func InventoryUnitModelFromDomain(u *inventory.InventoryUnit) *InventoryUnitModel {
	m := &InventoryUnitModel{}
	m.FromDomain(u)
	return m
}
