package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UnitStatus represents the sale status of an inventory unit
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusSold      UnitStatus = "SOLD"
	UnitStatusReturned  UnitStatus = "RETURNED"
)

// IsValid checks if the status is a valid UnitStatus
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusSold, UnitStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of UnitStatus
func (s UnitStatus) String() string {
	return string(s)
}

// InventoryUnit represents one physically distinct, separately sellable
// phone. Units are created during purchase order receiving, one per
// received record, and carry their cost and supplier provenance.
type InventoryUnit struct {
	shared.BaseAggregateRoot
	BrandID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Model         string          `gorm:"type:varchar(200);not null"`
	Color         string          `gorm:"type:varchar(50)"`
	IMEI          string          `gorm:"type:varchar(20);index"`
	Condition     string          `gorm:"type:varchar(50);not null"`
	BatteryHealth *int            `gorm:""`
	StorageGB     *int            `gorm:""`
	RAMGB         *int            `gorm:""`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status        UnitStatus      `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseDate  time.Time       `gorm:"not null"`
	SourceOrderID *uuid.UUID      `gorm:"type:uuid;index"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InventoryUnit) TableName() string {
	return "inventory_units"
}

// NewUnitParams carries the attributes for a new inventory unit
type NewUnitParams struct {
	BrandID       uuid.UUID
	Model         string
	Color         string
	IMEI          string
	Condition     string
	BatteryHealth *int
	StorageGB     *int
	RAMGB         *int
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	SupplierID    uuid.UUID
	PurchaseDate  time.Time
	SourceOrderID *uuid.UUID
	Notes         string
}

// NewInventoryUnit creates an available inventory unit.
// CostPrice comes from the originating purchase order line item,
// SellingPrice from the receiving record.
func NewInventoryUnit(p NewUnitParams) (*InventoryUnit, error) {
	if p.BrandID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Brand ID cannot be empty")
	}
	if strings.TrimSpace(p.Model) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Model cannot be empty")
	}
	if strings.TrimSpace(p.Condition) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Condition cannot be empty")
	}
	if p.CostPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Cost price cannot be negative")
	}
	if p.SellingPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Selling price cannot be negative")
	}
	if p.BatteryHealth != nil && (*p.BatteryHealth < 0 || *p.BatteryHealth > 100) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Battery health must be between 0 and 100")
	}
	if p.SupplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier ID cannot be empty")
	}

	unit := &InventoryUnit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BrandID:           p.BrandID,
		Model:             strings.TrimSpace(p.Model),
		Color:             p.Color,
		IMEI:              strings.TrimSpace(p.IMEI),
		Condition:         strings.TrimSpace(p.Condition),
		BatteryHealth:     p.BatteryHealth,
		StorageGB:         p.StorageGB,
		RAMGB:             p.RAMGB,
		CostPrice:         p.CostPrice,
		SellingPrice:      p.SellingPrice,
		Status:            UnitStatusAvailable,
		SupplierID:        p.SupplierID,
		PurchaseDate:      p.PurchaseDate,
		SourceOrderID:     p.SourceOrderID,
		Notes:             p.Notes,
	}

	unit.AddDomainEvent(NewUnitReceivedEvent(unit))

	return unit, nil
}

// HasIMEI returns true if the unit carries an IMEI
func (u *InventoryUnit) HasIMEI() bool {
	return u.IMEI != ""
}

// UpdateSellingPrice changes the asking price of an available unit
func (u *InventoryUnit) UpdateSellingPrice(price decimal.Decimal) error {
	if u.Status != UnitStatusAvailable {
		return shared.NewDomainError("INVALID_STATE", "Only available units can be repriced")
	}
	if price.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Selling price cannot be negative")
	}

	u.SellingPrice = price
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// MarkSold marks the unit as sold
func (u *InventoryUnit) MarkSold() error {
	if u.Status != UnitStatusAvailable {
		return shared.NewDomainError("INVALID_STATE", "Only available units can be sold")
	}

	u.Status = UnitStatusSold
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitSoldEvent(u))

	return nil
}

// MarkReturned marks a sold unit as returned to stock
func (u *InventoryUnit) MarkReturned() error {
	if u.Status != UnitStatusSold {
		return shared.NewDomainError("INVALID_STATE", "Only sold units can be returned")
	}

	u.Status = UnitStatusReturned
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Margin returns the difference between selling price and cost price
func (u *InventoryUnit) Margin() decimal.Decimal {
	return u.SellingPrice.Sub(u.CostPrice)
}
