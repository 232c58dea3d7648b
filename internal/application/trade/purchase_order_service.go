package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	appcatalog "github.com/recell/backend/internal/application/catalog"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/partner"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/recell/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations,
// including the receiving flow that turns an arrived order into
// inventory units.
type PurchaseOrderService struct {
	orderRepo      trade.PurchaseOrderRepository
	supplierRepo   partner.SupplierRepository
	unitRepo       inventory.UnitRepository
	brandResolver  *appcatalog.BrandResolver
	receivingUoW   trade.ReceivingUnitOfWork
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	supplierRepo partner.SupplierRepository,
	unitRepo inventory.UnitRepository,
	brandResolver *appcatalog.BrandResolver,
	receivingUoW trade.ReceivingUnitOfWork,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:     orderRepo,
		supplierRepo:  supplierRepo,
		unitRepo:      unitRepo,
		brandResolver: brandResolver,
		receivingUoW:  receivingUoW,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new purchase order in PENDING status
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	exists, err := s.supplierRepo.Exists(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
	}

	orderNumber, err := s.orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]trade.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = trade.ItemInput{
			BrandName: item.BrandName,
			Model:     item.Model,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	order, err := trade.NewPurchaseOrder(orderNumber, req.SupplierID, req.OrderDate, req.Notes, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a purchase order by its human-readable number
func (s *PurchaseOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderListItemResponse, int64, error) {
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
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = filter.Status.String()
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderListItemResponses(orders), total, nil
}

// Update updates a pending purchase order's supplier, date and notes
func (s *PurchaseOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.SupplierID != order.SupplierID {
		exists, err := s.supplierRepo.Exists(ctx, req.SupplierID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
		}
	}

	if err := order.UpdateDetails(req.SupplierID, req.OrderDate, req.Notes); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a pending purchase order. No inventory is touched.
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Delete deletes a purchase order. Received orders are permanent audit
// records of where stock came from and cannot be deleted.
func (s *PurchaseOrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !order.CanDelete() {
		return shared.NewDomainError("INVALID_STATE", "Received purchase orders cannot be deleted")
	}

	return s.orderRepo.Delete(ctx, orderID)
}

// Receive processes a receiving submission against a pending order.
// Validation happens up front; the mutation itself (unit inserts plus
// the status flip) is committed atomically, so a failure anywhere
// leaves the order pending and the stock untouched.
func (s *PurchaseOrderService) Receive(ctx context.Context, orderID uuid.UUID, req ReceivePurchaseOrderRequest) (*ReceiveResultResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	records := make([]trade.ReceivingRecord, len(req.Records))
	for i, in := range req.Records {
		records[i] = trade.ReceivingRecord{
			LineItemIndex: in.LineItemIndex,
			Brand:         in.Brand,
			Model:         in.Model,
			Color:         in.Color,
			IMEI:          in.IMEI,
			Condition:     in.Condition,
			BatteryHealth: in.BatteryHealth,
			StorageGB:     in.StorageGB,
			RAMGB:         in.RAMGB,
			SellingPrice:  in.SellingPrice,
			Notes:         in.Notes,
		}
	}

	if err := trade.ValidateReceiving(order, records); err != nil {
		return nil, err
	}

	units, err := s.buildUnits(ctx, order, records)
	if err != nil {
		return nil, err
	}

	if err := order.MarkReceived(); err != nil {
		return nil, err
	}

	createdIDs := make([]uuid.UUID, len(units))
	for i, unit := range units {
		createdIDs[i] = unit.ID
	}
	order.AddDomainEvent(trade.NewPurchaseOrderReceivedEvent(order, createdIDs))

	if err := s.receivingUoW.CommitReceiving(ctx, order, units); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	for _, unit := range units {
		s.publishEvents(ctx, unit)
	}

	orderResponse := ToPurchaseOrderResponse(order)
	return &ReceiveResultResponse{
		Order:          orderResponse,
		UnitsCreated:   len(createdIDs),
		CreatedUnitIDs: createdIDs,
	}, nil
}

// buildUnits turns validated receiving records into inventory units, in
// submission order. The record names the phone actually in hand, so its
// brand and model win over the line item's; the cost always comes from
// the line item the record points at.
func (s *PurchaseOrderService) buildUnits(ctx context.Context, order *trade.PurchaseOrder, records []trade.ReceivingRecord) ([]*inventory.InventoryUnit, error) {
	session := s.brandResolver.Session()
	units := make([]*inventory.InventoryUnit, 0, len(records))
	seenIMEIs := make(map[string]struct{}, len(records))

	for _, record := range records {
		item, err := order.ItemAt(record.LineItemIndex)
		if err != nil {
			return nil, err
		}

		brandID, err := session.Resolve(ctx, record.Brand)
		if err != nil {
			return nil, err
		}

		if record.IMEI != "" {
			if _, dup := seenIMEIs[record.IMEI]; dup {
				return nil, shared.NewDomainError("DUPLICATE_IMEI",
					fmt.Sprintf("IMEI %s appears more than once in this batch", record.IMEI))
			}
			taken, err := s.unitRepo.ExistsByIMEI(ctx, record.IMEI)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, shared.NewDomainError("DUPLICATE_IMEI",
					fmt.Sprintf("IMEI %s already exists in inventory", record.IMEI))
			}
			seenIMEIs[record.IMEI] = struct{}{}
		}

		sourceOrderID := order.ID
		unit, err := inventory.NewInventoryUnit(inventory.NewUnitParams{
			BrandID:       brandID,
			Model:         record.Model,
			Color:         record.Color,
			IMEI:          record.IMEI,
			Condition:     record.Condition,
			BatteryHealth: record.BatteryHealth,
			StorageGB:     record.StorageGB,
			RAMGB:         record.RAMGB,
			CostPrice:     item.UnitCost,
			SellingPrice:  record.SellingPrice,
			SupplierID:    order.SupplierID,
			PurchaseDate:  order.OrderDate,
			SourceOrderID: &sourceOrderID,
			Notes:         record.Notes,
		})
		if err != nil {
			return nil, err
		}

		units = append(units, unit)
	}

	return units, nil
}

// GetStatusSummary retrieves order counts grouped by status
func (s *PurchaseOrderService) GetStatusSummary(ctx context.Context) (*PurchaseOrderStatusSummary, error) {
	pending, err := s.orderRepo.CountByStatus(ctx, trade.PurchaseOrderStatusPending)
	if err != nil {
		return nil, err
	}

	received, err := s.orderRepo.CountByStatus(ctx, trade.PurchaseOrderStatusReceived)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.orderRepo.CountByStatus(ctx, trade.PurchaseOrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	return &PurchaseOrderStatusSummary{
		Pending:   pending,
		Received:  received,
		Cancelled: cancelled,
		Total:     pending + received + cancelled,
	}, nil
}

func (s *PurchaseOrderService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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
