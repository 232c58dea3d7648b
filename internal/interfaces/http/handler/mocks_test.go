package handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/catalog"
	"github.com/recell/backend/internal/domain/inventory"
	"github.com/recell/backend/internal/domain/partner"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/recell/backend/internal/domain/trade"
)

// Map-backed repository fakes for wiring real services under httptest.

type memBrandRepo struct {
	mu     sync.Mutex
	brands map[uuid.UUID]*catalog.Brand
}

func newMemBrandRepo() *memBrandRepo {
	return &memBrandRepo{brands: make(map[uuid.UUID]*catalog.Brand)}
}

func (r *memBrandRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.brands[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Brand not found")
}

func (r *memBrandRepo) FindByName(ctx context.Context, name string) (*catalog.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	normalized := catalog.NormalizeBrandName(name)
	for _, b := range r.brands {
		if b.NormalizedName() == normalized {
			copied := *b
			return &copied, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Brand not found")
}

func (r *memBrandRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]catalog.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		result = append(result, *b)
	}
	return result, nil
}

func (r *memBrandRepo) Save(ctx context.Context, brand *catalog.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *brand
	r.brands[brand.ID] = &copied
	return nil
}

func (r *memBrandRepo) Upsert(ctx context.Context, brand *catalog.Brand) (*catalog.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.NormalizedName() == brand.NormalizedName() {
			copied := *b
			return &copied, nil
		}
	}
	copied := *brand
	r.brands[brand.ID] = &copied
	result := copied
	return &result, nil
}

func (r *memBrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[id]; !ok {
		return shared.NewDomainError("NOT_FOUND", "Brand not found")
	}
	delete(r.brands, id)
	return nil
}

func (r *memBrandRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.brands)), nil
}

type memSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[uuid.UUID]*partner.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: make(map[uuid.UUID]*partner.Supplier)}
}

func (r *memSupplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.suppliers[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Supplier not found")
}

func (r *memSupplierRepo) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]partner.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		result = append(result, *s)
	}
	return result, nil
}

func (r *memSupplierRepo) Save(ctx context.Context, supplier *partner.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *supplier
	r.suppliers[supplier.ID] = &copied
	return nil
}

func (r *memSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[id]; !ok {
		return shared.NewDomainError("NOT_FOUND", "Supplier not found")
	}
	delete(r.suppliers, id)
	return nil
}

func (r *memSupplierRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.suppliers)), nil
}

func (r *memSupplierRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.suppliers[id]
	return ok, nil
}

type memUnitRepo struct {
	mu    sync.Mutex
	units map[uuid.UUID]*inventory.InventoryUnit
}

func newMemUnitRepo() *memUnitRepo {
	return &memUnitRepo{units: make(map[uuid.UUID]*inventory.InventoryUnit)}
}

func (r *memUnitRepo) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.units[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
}

func (r *memUnitRepo) FindByIMEI(ctx context.Context, imei string) (*inventory.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.units {
		if u.IMEI == imei {
			copied := *u
			return &copied, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
}

func (r *memUnitRepo) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]inventory.InventoryUnit, 0, len(r.units))
	for _, u := range r.units {
		result = append(result, *u)
	}
	return result, nil
}

func (r *memUnitRepo) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]inventory.InventoryUnit, 0)
	for _, u := range r.units {
		if u.SourceOrderID != nil && *u.SourceOrderID == orderID {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *memUnitRepo) ExistsByIMEI(ctx context.Context, imei string) (bool, error) {
	if imei == "" {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.units {
		if u.IMEI == imei {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUnitRepo) Save(ctx context.Context, unit *inventory.InventoryUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *unit
	r.units[unit.ID] = &copied
	return nil
}

func (r *memUnitRepo) SaveWithLock(ctx context.Context, unit *inventory.InventoryUnit) error {
	return r.Save(ctx, unit)
}

func (r *memUnitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.units[id]; !ok {
		return shared.NewDomainError("NOT_FOUND", "Inventory unit not found")
	}
	delete(r.units, id)
	return nil
}

func (r *memUnitRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.units)), nil
}

func (r *memUnitRepo) CountByStatus(ctx context.Context, status inventory.UnitStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.units {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*trade.PurchaseOrder
	seq    int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]*trade.PurchaseOrder)}
}

func (r *memOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*trade.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		copied := *o
		copied.Items = append([]trade.PurchaseOrderItem(nil), o.Items...)
		return &copied, nil
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Purchase order not found")
}

func (r *memOrderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			copied := *o
			copied.Items = append([]trade.PurchaseOrderItem(nil), o.Items...)
			return &copied, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Purchase order not found")
}

func (r *memOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]trade.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *o)
	}
	return result, nil
}

func (r *memOrderRepo) FindByStatus(ctx context.Context, status trade.PurchaseOrderStatus, filter shared.Filter) ([]trade.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]trade.PurchaseOrder, 0)
	for _, o := range r.orders {
		if o.Status == status {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (r *memOrderRepo) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	copied.Items = append([]trade.PurchaseOrderItem(nil), order.Items...)
	r.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) SaveWithLock(ctx context.Context, order *trade.PurchaseOrder) error {
	return r.Save(ctx, order)
}

func (r *memOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return shared.NewDomainError("NOT_FOUND", "Purchase order not found")
	}
	delete(r.orders, id)
	return nil
}

func (r *memOrderRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *memOrderRepo) CountByStatus(ctx context.Context, status trade.PurchaseOrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memOrderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return fmt.Sprintf("PO-%04d", r.seq), nil
}

// memReceivingUoW persists units and the received order together, the
// way the transactional implementation does.
type memReceivingUoW struct {
	orderRepo *memOrderRepo
	unitRepo  *memUnitRepo
}

func (u *memReceivingUoW) CommitReceiving(ctx context.Context, order *trade.PurchaseOrder, units []*inventory.InventoryUnit) error {
	for _, unit := range units {
		if unit.IMEI != "" {
			taken, err := u.unitRepo.ExistsByIMEI(ctx, unit.IMEI)
			if err != nil {
				return err
			}
			if taken {
				return shared.NewDomainError("DUPLICATE_IMEI", "IMEI "+unit.IMEI+" already exists in inventory")
			}
		}
		if err := u.unitRepo.Save(ctx, unit); err != nil {
			return err
		}
	}
	return u.orderRepo.Save(ctx, order)
}
