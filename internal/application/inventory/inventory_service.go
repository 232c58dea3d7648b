package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/shared"
)

// InventoryService handles inventory unit business operations.
// Units enter stock through the purchase order receiving flow; this
// service covers queries and post-receiving lifecycle changes.
type InventoryService struct {
	unitRepo       inventory.UnitRepository
	eventPublisher shared.EventPublisher
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(unitRepo inventory.UnitRepository) *InventoryService {
	return &InventoryService{
		unitRepo: unitRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *InventoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves an inventory unit by ID
func (s *InventoryService) GetByID(ctx context.Context, id uuid.UUID) (*InventoryUnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToInventoryUnitResponse(unit)
	return &response, nil
}

// GetByIMEI retrieves an inventory unit by its IMEI
func (s *InventoryService) GetByIMEI(ctx context.Context, imei string) (*InventoryUnitResponse, error) {
	unit, err := s.unitRepo.FindByIMEI(ctx, imei)
	if err != nil {
		return nil, err
	}
	response := ToInventoryUnitResponse(unit)
	return &response, nil
}

// List retrieves inventory units with filtering and pagination
func (s *InventoryService) List(ctx context.Context, filter InventoryUnitListFilter) ([]InventoryUnitResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.BrandID != nil {
		domainFilter.Filters["brand_id"] = *filter.BrandID
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.SourceOrderID != nil {
		domainFilter.Filters["source_order_id"] = *filter.SourceOrderID
	}

	units, err := s.unitRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.unitRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInventoryUnitResponses(units), total, nil
}

// ListBySourceOrder retrieves the units created by receiving a purchase order
func (s *InventoryService) ListBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]InventoryUnitResponse, error) {
	units, err := s.unitRepo.FindBySourceOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToInventoryUnitResponses(units), nil
}

// UpdateSellingPrice reprices an available unit
func (s *InventoryService) UpdateSellingPrice(ctx context.Context, id uuid.UUID, req UpdateSellingPriceRequest) (*InventoryUnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := unit.UpdateSellingPrice(req.SellingPrice); err != nil {
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}

	response := ToInventoryUnitResponse(unit)
	return &response, nil
}

// MarkSold marks a unit as sold
func (s *InventoryService) MarkSold(ctx context.Context, id uuid.UUID) (*InventoryUnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := unit.MarkSold(); err != nil {
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, unit)

	response := ToInventoryUnitResponse(unit)
	return &response, nil
}

// MarkReturned marks a sold unit as returned
func (s *InventoryService) MarkReturned(ctx context.Context, id uuid.UUID) (*InventoryUnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := unit.MarkReturned(); err != nil {
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}

	response := ToInventoryUnitResponse(unit)
	return &response, nil
}

// GetStatusSummary retrieves unit counts grouped by status
func (s *InventoryService) GetStatusSummary(ctx context.Context) (*InventoryStatusSummary, error) {
	available, err := s.unitRepo.CountByStatus(ctx, inventory.UnitStatusAvailable)
	if err != nil {
		return nil, err
	}

	sold, err := s.unitRepo.CountByStatus(ctx, inventory.UnitStatusSold)
	if err != nil {
		return nil, err
	}

	returned, err := s.unitRepo.CountByStatus(ctx, inventory.UnitStatusReturned)
	if err != nil {
		return nil, err
	}

	return &InventoryStatusSummary{
		Available: available,
		Sold:      sold,
		Returned:  returned,
		Total:     available + sold + returned,
	}, nil
}

func (s *InventoryService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	aggregate.ClearDomainEvents()
}
