package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryUnitListFilter represents filter options for the unit list
type InventoryUnitListFilter struct {
	Search        string     `form:"search"`
	Status        string     `form:"status" binding:"omitempty,oneof=AVAILABLE SOLD RETURNED"`
	BrandID       *uuid.UUID `form:"brand_id"`
	SupplierID    *uuid.UUID `form:"supplier_id"`
	SourceOrderID *uuid.UUID `form:"source_order_id"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UpdateSellingPriceRequest represents a request to reprice a unit
type UpdateSellingPriceRequest struct {
	SellingPrice decimal.Decimal `json:"selling_price" binding:"required"`
}

// InventoryUnitResponse represents an inventory unit in API responses
type InventoryUnitResponse struct {
	ID            uuid.UUID       `json:"id"`
	BrandID       uuid.UUID       `json:"brand_id"`
	Model         string          `json:"model"`
	Color         string          `json:"color,omitempty"`
	IMEI          string          `json:"imei,omitempty"`
	Condition     string          `json:"condition"`
	BatteryHealth *int            `json:"battery_health,omitempty"`
	StorageGB     *int            `json:"storage_gb,omitempty"`
	RAMGB         *int            `json:"ram_gb,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Status        string          `json:"status"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	SourceOrderID *uuid.UUID      `json:"source_order_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryStatusSummary represents unit counts grouped by status
type InventoryStatusSummary struct {
	Available int64 `json:"available"`
	Sold      int64 `json:"sold"`
	Returned  int64 `json:"returned"`
	Total     int64 `json:"total"`
}

// ToInventoryUnitResponse converts a domain unit to a response DTO
func ToInventoryUnitResponse(unit *inventory.InventoryUnit) InventoryUnitResponse {
	return InventoryUnitResponse{
		ID:            unit.ID,
		BrandID:       unit.BrandID,
		Model:         unit.Model,
		Color:         unit.Color,
		IMEI:          unit.IMEI,
		Condition:     unit.Condition,
		BatteryHealth: unit.BatteryHealth,
		StorageGB:     unit.StorageGB,
		RAMGB:         unit.RAMGB,
		CostPrice:     unit.CostPrice,
		SellingPrice:  unit.SellingPrice,
		Status:        unit.Status.String(),
		SupplierID:    unit.SupplierID,
		PurchaseDate:  unit.PurchaseDate,
		SourceOrderID: unit.SourceOrderID,
		Notes:         unit.Notes,
		CreatedAt:     unit.CreatedAt,
		UpdatedAt:     unit.UpdatedAt,
	}
}

// ToInventoryUnitResponses converts a slice of domain units to response DTOs
func ToInventoryUnitResponses(units []inventory.InventoryUnit) []InventoryUnitResponse {
	responses := make([]InventoryUnitResponse, len(units))
	for i := range units {
		responses[i] = ToInventoryUnitResponse(&units[i])
	}
	return responses
}
