package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/recell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUnitRepository implements inventory.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryUnit, error) {
	var model models.InventoryUnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIMEI finds a unit by exact IMEI
func (r *GormUnitRepository) FindByIMEI(ctx context.Context, imei string) (*inventory.InventoryUnit, error) {
	if imei == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "IMEI cannot be empty")
	}
	var model models.InventoryUnitModel
	if err := r.db.WithContext(ctx).
		Where("imei = ?", imei).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all units matching the filter
func (r *GormUnitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryUnit, error) {
	var rows []models.InventoryUnitModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InventoryUnitModel{}), filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	units := make([]inventory.InventoryUnit, len(rows))
	for i := range rows {
		units[i] = *rows[i].ToDomain()
	}
	return units, nil
}

// FindBySourceOrder finds units created by receiving a purchase order
func (r *GormUnitRepository) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryUnit, error) {
	var rows []models.InventoryUnitModel
	if err := r.db.WithContext(ctx).
		Where("source_order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	units := make([]inventory.InventoryUnit, len(rows))
	for i := range rows {
		units[i] = *rows[i].ToDomain()
	}
	return units, nil
}

// ExistsByIMEI checks whether any unit carries the given IMEI. Units
// without an IMEI store the empty string and never count as duplicates.
func (r *GormUnitRepository) ExistsByIMEI(ctx context.Context, imei string) (bool, error) {
	if imei == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryUnitModel{}).
		Where("imei = ?", imei).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *inventory.InventoryUnit) error {
	return r.db.WithContext(ctx).Save(models.InventoryUnitModelFromDomain(unit)).Error
}

// SaveWithLock saves with optimistic locking. The aggregate has already
// bumped its version in memory; zero rows updated means a concurrent
// writer got there first.
func (r *GormUnitRepository) SaveWithLock(ctx context.Context, unit *inventory.InventoryUnit) error {
	unit.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.InventoryUnitModel{}).
		Where("id = ? AND version = ?", unit.ID, unit.Version-1).
		Updates(map[string]interface{}{
			"selling_price": unit.SellingPrice,
			"status":        unit.Status,
			"notes":         unit.Notes,
			"version":       unit.Version,
			"updated_at":    unit.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "The inventory unit has been modified by another user")
	}
	return nil
}

// Delete deletes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InventoryUnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
	}
	return nil
}

// Count counts units matching the filter
func (r *GormUnitRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.InventoryUnitModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts units by status
func (r *GormUnitRepository) CountByStatus(ctx context.Context, status inventory.UnitStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryUnitModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormUnitRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, InventoryUnitSortFields)
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormUnitRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("model ILIKE ? OR imei ILIKE ? OR color ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "brand_id":
			query = query.Where("brand_id = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "condition":
			query = query.Where("condition = ?", value)
		case "source_order_id":
			query = query.Where("source_order_id = ?", value)
		}
	}

	return query
}
