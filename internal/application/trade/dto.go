package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID                      `json:"supplier_id" binding:"required"`
	OrderDate  time.Time                      `json:"order_date" binding:"required"`
	Notes      string                         `json:"notes"`
	Items      []CreatePurchaseOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreatePurchaseOrderItemInput represents a line item in the create request
type CreatePurchaseOrderItemInput struct {
	BrandName string          `json:"brand_name" binding:"required,min=1,max=100"`
	Model     string          `json:"model" binding:"required,min=1,max=200"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitCost  decimal.Decimal `json:"unit_cost" binding:"required"`
}

// UpdatePurchaseOrderRequest represents a request to update a pending
// purchase order. Line items are fixed at creation and cannot change.
type UpdatePurchaseOrderRequest struct {
	SupplierID uuid.UUID `json:"supplier_id" binding:"required"`
	OrderDate  time.Time `json:"order_date" binding:"required"`
	Notes      string    `json:"notes"`
}

// ReceivingRecordInput describes one physical phone in a receiving request
type ReceivingRecordInput struct {
	LineItemIndex int             `json:"line_item_index" binding:"min=0"`
	Brand         string          `json:"brand" binding:"required,min=1,max=100"`
	Model         string          `json:"model" binding:"required,min=1,max=200"`
	Color         string          `json:"color" binding:"omitempty,max=50"`
	IMEI          string          `json:"imei" binding:"omitempty,max=20"`
	Condition     string          `json:"condition" binding:"required,min=1,max=50"`
	BatteryHealth *int            `json:"battery_health" binding:"omitempty,min=0,max=100"`
	StorageGB     *int            `json:"storage_gb" binding:"omitempty,min=0"`
	RAMGB         *int            `json:"ram_gb" binding:"omitempty,min=0"`
	SellingPrice  decimal.Decimal `json:"selling_price" binding:"required"`
	Notes         string          `json:"notes"`
}

// ReceivePurchaseOrderRequest represents a request to receive a purchase order
type ReceivePurchaseOrderRequest struct {
	Records []ReceivingRecordInput `json:"records" binding:"required,dive"`
}

// PurchaseOrderListFilter represents filter options for purchase order list
type PurchaseOrderListFilter struct {
	Search     string                     `form:"search"`
	SupplierID *uuid.UUID                 `form:"supplier_id"`
	Status     *trade.PurchaseOrderStatus `form:"status"`
	StartDate  *time.Time                 `form:"start_date"`
	EndDate    *time.Time                 `form:"end_date"`
	Page       int                        `form:"page" binding:"omitempty,min=1"`
	PageSize   int                        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string                     `form:"order_by"`
	OrderDir   string                     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PurchaseOrderItemResponse represents a line item in API responses
type PurchaseOrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	BrandName string          `json:"brand_name"`
	Model     string          `json:"model"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Amount    decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID            uuid.UUID                   `json:"id"`
	OrderNumber   string                      `json:"order_number"`
	SupplierID    uuid.UUID                   `json:"supplier_id"`
	OrderDate     time.Time                   `json:"order_date"`
	Items         []PurchaseOrderItemResponse `json:"items"`
	ItemCount     int                         `json:"item_count"`
	ExpectedUnits int                         `json:"expected_units"`
	TotalAmount   decimal.Decimal             `json:"total_amount"`
	Status        string                      `json:"status"`
	Notes         string                      `json:"notes,omitempty"`
	ReceivedAt    *time.Time                  `json:"received_at,omitempty"`
	CancelledAt   *time.Time                  `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// PurchaseOrderListItemResponse represents a purchase order in list responses
type PurchaseOrderListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	OrderDate     time.Time       `json:"order_date"`
	ItemCount     int             `json:"item_count"`
	ExpectedUnits int             `json:"expected_units"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReceiveResultResponse represents the outcome of a receiving operation
type ReceiveResultResponse struct {
	Order          PurchaseOrderResponse `json:"purchase_order"`
	UnitsCreated   int                   `json:"units_created"`
	CreatedUnitIDs []uuid.UUID           `json:"created_unit_ids"`
}

// PurchaseOrderStatusSummary represents order counts grouped by status
type PurchaseOrderStatusSummary struct {
	Pending   int64 `json:"pending"`
	Received  int64 `json:"received"`
	Cancelled int64 `json:"cancelled"`
	Total     int64 `json:"total"`
}

// ToPurchaseOrderItemResponse converts a domain line item to a response DTO
func ToPurchaseOrderItemResponse(item *trade.PurchaseOrderItem) PurchaseOrderItemResponse {
	return PurchaseOrderItemResponse{
		ID:        item.ID,
		BrandName: item.BrandName,
		Model:     item.Model,
		Quantity:  item.Quantity,
		UnitCost:  item.UnitCost,
		Amount:    item.Amount,
	}
}

// ToPurchaseOrderResponse converts a domain purchase order to a response DTO
func ToPurchaseOrderResponse(order *trade.PurchaseOrder) PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, len(order.Items))
	for i := range order.Items {
		items[i] = ToPurchaseOrderItemResponse(&order.Items[i])
	}

	return PurchaseOrderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		SupplierID:    order.SupplierID,
		OrderDate:     order.OrderDate,
		Items:         items,
		ItemCount:     order.ItemCount(),
		ExpectedUnits: order.ExpectedUnitCount(),
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.String(),
		Notes:         order.Notes,
		ReceivedAt:    order.ReceivedAt,
		CancelledAt:   order.CancelledAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// ToPurchaseOrderListItemResponses converts domain orders to list DTOs
func ToPurchaseOrderListItemResponses(orders []trade.PurchaseOrder) []PurchaseOrderListItemResponse {
	responses := make([]PurchaseOrderListItemResponse, len(orders))
	for i := range orders {
		order := &orders[i]
		responses[i] = PurchaseOrderListItemResponse{
			ID:            order.ID,
			OrderNumber:   order.OrderNumber,
			SupplierID:    order.SupplierID,
			OrderDate:     order.OrderDate,
			ItemCount:     order.ItemCount(),
			ExpectedUnits: order.ExpectedUnitCount(),
			TotalAmount:   order.TotalAmount,
			Status:        order.Status.String(),
			CreatedAt:     order.CreatedAt,
		}
	}
	return responses
}
