package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusPending:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// CanReceive returns true if receiving stock is allowed in this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusPending
}

// IsTerminal returns true for states that permit no further transitions
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == PurchaseOrderStatusReceived || s == PurchaseOrderStatusCancelled
}

// PurchaseOrderItem represents a line item in a purchase order.
// BrandName is free text at ordering time; it is only resolved to a
// catalog brand when the order is received.
type PurchaseOrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrandName string          `gorm:"type:varchar(100);not null"`
	Model     string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`                    // Number of physical units ordered
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Cost per unit
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitCost
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// NewPurchaseOrderItem creates a new purchase order line item
func NewPurchaseOrderItem(orderID uuid.UUID, brandName, model string, quantity int, unitCost decimal.Decimal) (*PurchaseOrderItem, error) {
	brandName = strings.TrimSpace(brandName)
	model = strings.TrimSpace(model)

	if brandName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item brand cannot be empty")
	}
	if model == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item model cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item quantity must be at least 1")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Item unit cost cannot be negative")
	}

	now := time.Now()

	return &PurchaseOrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		BrandName: brandName,
		Model:     model,
		Quantity:  quantity,
		UnitCost:  unitCost,
		Amount:    unitCost.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ItemInput is the caller-supplied line item data for order creation
type ItemInput struct {
	BrandName string
	Model     string
	Quantity  int
	UnitCost  decimal.Decimal
}

// PurchaseOrder represents a purchase order aggregate root.
// It tracks a supplier order from creation until the stock arrives
// (RECEIVED) or the order is called off (CANCELLED). Line items are
// fixed at creation; only supplier, order date and notes may change
// while the order is still pending.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber string              `gorm:"type:varchar(20);not null;uniqueIndex"`
	SupplierID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	OrderDate   time.Time           `gorm:"not null"`
	Items       []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // Sum of all item amounts, derived
	Status      PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Notes       string              `gorm:"type:text"`
	ReceivedAt  *time.Time
	CancelledAt *time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in PENDING status.
// At least one line item is required; the total is derived from the items.
func NewPurchaseOrder(orderNumber string, supplierID uuid.UUID, orderDate time.Time, notes string, items []ItemInput) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order number cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier ID cannot be empty")
	}
	if orderDate.IsZero() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Order date cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase order must have at least one item")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		SupplierID:        supplierID,
		OrderDate:         orderDate,
		Items:             make([]PurchaseOrderItem, 0, len(items)),
		TotalAmount:       decimal.Zero,
		Status:            PurchaseOrderStatusPending,
		Notes:             strings.TrimSpace(notes),
	}

	for _, in := range items {
		item, err := NewPurchaseOrderItem(order.ID, in.BrandName, in.Model, in.Quantity, in.UnitCost)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}

	order.recalculateTotal()
	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// UpdateDetails changes the supplier, order date and notes.
// Only allowed while the order is PENDING; line items are immutable.
func (o *PurchaseOrder) UpdateDetails(supplierID uuid.UUID, orderDate time.Time, notes string) error {
	if o.Status != PurchaseOrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be updated")
	}
	if supplierID == uuid.Nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Supplier ID cannot be empty")
	}
	if orderDate.IsZero() {
		return shared.NewDomainError("VALIDATION_ERROR", "Order date cannot be empty")
	}

	o.SupplierID = supplierID
	o.OrderDate = orderDate
	o.Notes = strings.TrimSpace(notes)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// MarkReceived transitions the order to RECEIVED
func (o *PurchaseOrder) MarkReceived() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusReceived) {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be received")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusReceived
	o.ReceivedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Cancel transitions the order to CANCELLED. No stock is touched.
func (o *PurchaseOrder) Cancel() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be cancelled")
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o))

	return nil
}

// CanDelete returns true if the order may be deleted.
// A received order is a permanent audit record of stock provenance.
func (o *PurchaseOrder) CanDelete() bool {
	return o.Status != PurchaseOrderStatusReceived
}

// ExpectedUnitCount returns the total number of physical units the order calls for
func (o *PurchaseOrder) ExpectedUnitCount() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// ItemCount returns the number of line items in the order
func (o *PurchaseOrder) ItemCount() int {
	return len(o.Items)
}

// IsPending returns true if the order is awaiting stock
func (o *PurchaseOrder) IsPending() bool {
	return o.Status == PurchaseOrderStatusPending
}

// IsReceived returns true if the order has been received into inventory
func (o *PurchaseOrder) IsReceived() bool {
	return o.Status == PurchaseOrderStatusReceived
}

// IsCancelled returns true if the order was cancelled
func (o *PurchaseOrder) IsCancelled() bool {
	return o.Status == PurchaseOrderStatusCancelled
}

// IsTerminal returns true if the order is in a terminal state
func (o *PurchaseOrder) IsTerminal() bool {
	return o.Status.IsTerminal()
}

// ItemAt returns the line item at the given position, or an error when
// the index falls outside the order's items.
func (o *PurchaseOrder) ItemAt(index int) (*PurchaseOrderItem, error) {
	if index < 0 || index >= len(o.Items) {
		return nil, shared.NewDomainError("INVALID_REFERENCE",
			fmt.Sprintf("Line item index %d is out of range (order has %d items)", index, len(o.Items)))
	}
	return &o.Items[index], nil
}

// recalculateTotal recalculates the order total from its items
func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}
