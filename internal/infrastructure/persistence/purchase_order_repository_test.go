package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
	"github.com/recell/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersistedOrder(t *testing.T, repo *GormPurchaseOrderRepository, orderNumber string) *trade.PurchaseOrder {
	t.Helper()

	order, err := trade.NewPurchaseOrder(orderNumber, uuid.New(), time.Now(), "test order", []trade.ItemInput{
		{BrandName: "Apple", Model: "iPhone 15", Quantity: 2, UnitCost: decimal.NewFromInt(800)},
		{BrandName: "Samsung", Model: "Galaxy S24", Quantity: 1, UnitCost: decimal.NewFromInt(600)},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), order))
	return order
}

func TestGormPurchaseOrderRepository_SaveAndFind(t *testing.T) {
	t.Run("round-trips an order with its items", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		order := newPersistedOrder(t, repo, "PO-0001")

		found, err := repo.FindByID(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, "PO-0001", found.OrderNumber)
		assert.Equal(t, trade.PurchaseOrderStatusPending, found.Status)
		assert.Len(t, found.Items, 2)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(2200)))
		assert.Equal(t, 3, found.ExpectedUnitCount())
	})

	t.Run("finds by order number", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		order := newPersistedOrder(t, repo, "PO-0042")

		found, err := repo.FindByOrderNumber(context.Background(), "PO-0042")

		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
	})

	t.Run("returns NOT_FOUND for unknown id", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))

		_, err := repo.FindByID(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestGormPurchaseOrderRepository_SaveWithLock(t *testing.T) {
	t.Run("persists a version bump from a domain operation", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		order := newPersistedOrder(t, repo, "PO-0001")

		require.NoError(t, order.Cancel())
		require.NoError(t, repo.SaveWithLock(context.Background(), order))

		found, err := repo.FindByID(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, trade.PurchaseOrderStatusCancelled, found.Status)
		assert.Equal(t, order.Version, found.Version)
		assert.NotNil(t, found.CancelledAt)
	})

	t.Run("rejects a stale aggregate", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		order := newPersistedOrder(t, repo, "PO-0001")

		require.NoError(t, order.Cancel())
		require.NoError(t, repo.SaveWithLock(context.Background(), order))

		// Same in-memory version again: the row has moved on.
		err := repo.SaveWithLock(context.Background(), order)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
	})
}

func TestGormPurchaseOrderRepository_Delete(t *testing.T) {
	t.Run("removes the order and its items", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPurchaseOrderRepository(db)
		order := newPersistedOrder(t, repo, "PO-0001")

		require.NoError(t, repo.Delete(context.Background(), order.ID))

		_, err := repo.FindByID(context.Background(), order.ID)
		assert.Error(t, err)

		var itemCount int64
		require.NoError(t, db.Table("purchase_order_items").
			Where("order_id = ?", order.ID).
			Count(&itemCount).Error)
		assert.Equal(t, int64(0), itemCount)
	})

	t.Run("returns NOT_FOUND for unknown id", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))

		err := repo.Delete(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestGormPurchaseOrderRepository_NextOrderNumber(t *testing.T) {
	t.Run("allocates sequential zero-padded numbers", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))

		first, err := repo.NextOrderNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "PO-0001", first)

		second, err := repo.NextOrderNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "PO-0002", second)
	})

	t.Run("width grows past four digits", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPurchaseOrderRepository(db)

		require.NoError(t, db.Exec(
			"INSERT INTO order_number_sequences (name, value) VALUES (?, ?)",
			orderNumberSequence, 9999,
		).Error)

		next, err := repo.NextOrderNumber(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "PO-10000", next)
	})

	t.Run("never hands out the same number twice", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))

		seen := make(map[string]bool)
		for i := 0; i < 25; i++ {
			number, err := repo.NextOrderNumber(context.Background())
			require.NoError(t, err)
			assert.False(t, seen[number], "number %s allocated twice", number)
			seen[number] = true
		}
	})
}

func TestGormPurchaseOrderRepository_FilteringAndCounts(t *testing.T) {
	seedOrders := func(t *testing.T, repo *GormPurchaseOrderRepository) {
		t.Helper()
		for i := 0; i < 3; i++ {
			newPersistedOrder(t, repo, fmt.Sprintf("PO-000%d", i+1))
		}
		cancelled := newPersistedOrder(t, repo, "PO-0004")
		require.NoError(t, cancelled.Cancel())
		require.NoError(t, repo.SaveWithLock(context.Background(), cancelled))
	}

	t.Run("filters by status", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		seedOrders(t, repo)

		pending, err := repo.FindByStatus(context.Background(), trade.PurchaseOrderStatusPending, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, pending, 3)

		cancelled, err := repo.FindByStatus(context.Background(), trade.PurchaseOrderStatusCancelled, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, cancelled, 1)
	})

	t.Run("counts by status", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		seedOrders(t, repo)

		count, err := repo.CountByStatus(context.Background(), trade.PurchaseOrderStatusPending)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = repo.CountByStatus(context.Background(), trade.PurchaseOrderStatusReceived)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("paginates results", func(t *testing.T) {
		repo := NewGormPurchaseOrderRepository(setupTestDB(t))
		seedOrders(t, repo)

		filter := shared.DefaultFilter()
		filter.Page = 1
		filter.PageSize = 2
		filter.OrderBy = "order_number"
		filter.OrderDir = "asc"

		page, err := repo.FindAll(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "PO-0001", page[0].OrderNumber)
		assert.Equal(t, "PO-0002", page[1].OrderNumber)
	})
}
