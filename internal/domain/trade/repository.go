package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/shared"
)

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by its human-readable number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll finds purchase orders with filtering and pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus finds purchase orders in the given status
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order and its items
	Save(ctx context.Context, order *PurchaseOrder) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error

	// Delete deletes a purchase order and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts purchase orders in the given status
	CountByStatus(ctx context.Context, status PurchaseOrderStatus) (int64, error)

	// NextOrderNumber atomically allocates the next order number in the
	// PO-NNNN sequence. Concurrent callers never see the same number.
	NextOrderNumber(ctx context.Context) (string, error)
}

// ReceivingUnitOfWork commits the receiving mutation atomically: every
// unit insert and the order's status flip succeed or fail together, so
// a failed receiving leaves no orphaned stock and the order stays
// pending. Unit IMEIs are re-checked for uniqueness inside the same
// transaction.
type ReceivingUnitOfWork interface {
	CommitReceiving(ctx context.Context, order *PurchaseOrder, units []*inventory.InventoryUnit) error
}
