package inventory

import (
	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeInventoryUnit = "InventoryUnit"

// Event type constants
const (
	EventTypeUnitReceived = "InventoryUnitReceived"
	EventTypeUnitSold     = "InventoryUnitSold"
)

// UnitReceivedEvent is raised when a unit enters inventory during receiving
type UnitReceivedEvent struct {
	shared.BaseDomainEvent
	UnitID        uuid.UUID       `json:"unit_id"`
	BrandID       uuid.UUID       `json:"brand_id"`
	Model         string          `json:"model"`
	IMEI          string          `json:"imei,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SourceOrderID *uuid.UUID      `json:"source_order_id,omitempty"`
}

// NewUnitReceivedEvent creates a new UnitReceivedEvent
func NewUnitReceivedEvent(unit *InventoryUnit) *UnitReceivedEvent {
	return &UnitReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitReceived, AggregateTypeInventoryUnit, unit.ID),
		UnitID:          unit.ID,
		BrandID:         unit.BrandID,
		Model:           unit.Model,
		IMEI:            unit.IMEI,
		CostPrice:       unit.CostPrice,
		SellingPrice:    unit.SellingPrice,
		SupplierID:      unit.SupplierID,
		SourceOrderID:   unit.SourceOrderID,
	}
}

// EventType returns the event type name
func (e *UnitReceivedEvent) EventType() string {
	return EventTypeUnitReceived
}

// UnitSoldEvent is raised when a unit is marked sold
type UnitSoldEvent struct {
	shared.BaseDomainEvent
	UnitID       uuid.UUID       `json:"unit_id"`
	BrandID      uuid.UUID       `json:"brand_id"`
	Model        string          `json:"model"`
	IMEI         string          `json:"imei,omitempty"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// NewUnitSoldEvent creates a new UnitSoldEvent
func NewUnitSoldEvent(unit *InventoryUnit) *UnitSoldEvent {
	return &UnitSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitSold, AggregateTypeInventoryUnit, unit.ID),
		UnitID:          unit.ID,
		BrandID:         unit.BrandID,
		Model:           unit.Model,
		IMEI:            unit.IMEI,
		CostPrice:       unit.CostPrice,
		SellingPrice:    unit.SellingPrice,
	}
}

// EventType returns the event type name
func (e *UnitSoldEvent) EventType() string {
	return EventTypeUnitSold
}
