package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/recell/backend/internal/domain/trade"
	"github.com/recell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReceivingUnitOfWork implements trade.ReceivingUnitOfWork. It
// commits a receiving as one transaction: every unit insert plus the
// order's status flip succeed together or not at all, so a mid-batch
// failure leaves no orphaned stock and the order stays pending.
type GormReceivingUnitOfWork struct {
	db *gorm.DB
}

// NewGormReceivingUnitOfWork creates a new GormReceivingUnitOfWork
func NewGormReceivingUnitOfWork(db *gorm.DB) *GormReceivingUnitOfWork {
	return &GormReceivingUnitOfWork{db: db}
}

// CommitReceiving persists the received units and the order's RECEIVED
// status atomically. IMEIs are re-checked inside the transaction: the
// service-level check races with concurrent receivings, this one does
// not.
func (u *GormReceivingUnitOfWork) CommitReceiving(ctx context.Context, order *trade.PurchaseOrder, units []*inventory.InventoryUnit) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, unit := range units {
			if unit.IMEI != "" {
				var count int64
				if err := tx.Model(&models.InventoryUnitModel{}).
					Where("imei = ?", unit.IMEI).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return shared.NewDomainError("DUPLICATE_IMEI",
						fmt.Sprintf("IMEI %s already exists in inventory", unit.IMEI))
				}
			}

			if err := tx.Create(models.InventoryUnitModelFromDomain(unit)).Error; err != nil {
				return err
			}
		}

		order.UpdatedAt = time.Now()

		result := tx.Model(&models.PurchaseOrderModel{}).
			Where("id = ? AND version = ? AND status = ?",
				order.ID, order.Version-1, trade.PurchaseOrderStatusPending).
			Updates(map[string]interface{}{
				"status":      order.Status,
				"received_at": order.ReceivedAt,
				"version":     order.Version,
				"updated_at":  order.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The purchase order has been modified by another user")
		}

		return nil
	})
}
