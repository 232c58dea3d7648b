package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	AggregateModel
	OrderNumber string                    `gorm:"type:varchar(20);not null;uniqueIndex"`
	SupplierID  uuid.UUID                 `gorm:"type:uuid;not null;index"`
	OrderDate   time.Time                 `gorm:"not null;index"`
	Items       []PurchaseOrderItemModel  `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount decimal.Decimal           `gorm:"type:decimal(18,4);not null;default:0"`
	Status      trade.PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes       string                    `gorm:"type:text"`
	ReceivedAt  *time.Time
	CancelledAt *time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	order := &trade.PurchaseOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		SupplierID:        m.SupplierID,
		OrderDate:         m.OrderDate,
		TotalAmount:       m.TotalAmount,
		Status:            m.Status,
		Notes:             m.Notes,
		ReceivedAt:        m.ReceivedAt,
		CancelledAt:       m.CancelledAt,
		Items:             make([]trade.PurchaseOrderItem, len(m.Items)),
	}
	for i, item := range m.Items {
		order.Items[i] = *item.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(o *trade.PurchaseOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.SupplierID = o.SupplierID
	m.OrderDate = o.OrderDate
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status
	m.Notes = o.Notes
	m.ReceivedAt = o.ReceivedAt
	m.CancelledAt = o.CancelledAt
	m.Items = make([]PurchaseOrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = *PurchaseOrderItemModelFromDomain(&item)
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(o *trade.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// PurchaseOrderItemModel is the persistence model for the PurchaseOrderItem entity.
type PurchaseOrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BrandName string          `gorm:"type:varchar(100);not null"`
	Model     string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts the persistence model to a domain PurchaseOrderItem entity.
func (m *PurchaseOrderItemModel) ToDomain() *trade.PurchaseOrderItem {
	return &trade.PurchaseOrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		BrandName: m.BrandName,
		Model:     m.Model,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PurchaseOrderItemModelFromDomain creates a new persistence model from a domain PurchaseOrderItem entity.
func PurchaseOrderItemModelFromDomain(i *trade.PurchaseOrderItem) *PurchaseOrderItemModel {
	return &PurchaseOrderItemModel{
		ID:        i.ID,
		OrderID:   i.OrderID,
		BrandName: i.BrandName,
		Model:     i.Model,
		Quantity:  i.Quantity,
		UnitCost:  i.UnitCost,
		Amount:    i.Amount,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// OrderNumberSequenceModel backs the atomic order number allocator.
// One row per sequence name; the value is bumped with an upsert so
// concurrent allocations never hand out the same number.
type OrderNumberSequenceModel struct {
	Name  string `gorm:"type:varchar(50);primary_key"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderNumberSequenceModel) TableName() string {
	return "order_number_sequences"
}
