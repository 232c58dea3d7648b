package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
)

// UnitRepository defines the interface for inventory unit persistence
type UnitRepository interface {
	// FindByID finds a unit by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryUnit, error)

	// FindByIMEI finds a unit by exact IMEI
	FindByIMEI(ctx context.Context, imei string) (*InventoryUnit, error)

	// FindAll finds all units matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryUnit, error)

	// FindBySourceOrder finds units created by receiving a purchase order
	FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryUnit, error)

	// ExistsByIMEI checks whether any unit carries the given IMEI
	ExistsByIMEI(ctx context.Context, imei string) (bool, error)

	// Save creates or updates a unit
	Save(ctx context.Context, unit *InventoryUnit) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, unit *InventoryUnit) error

	// Delete deletes a unit
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts units matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts units by status
	CountByStatus(ctx context.Context, status UnitStatus) (int64, error)
}
