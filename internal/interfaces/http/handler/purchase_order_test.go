package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/recell/backend/internal/application/catalog"
	inventoryapp "github.com/recell/backend/internal/application/inventory"
	tradeapp "github.com/recell/backend/internal/application/trade"
	"github.com/recell/backend/internal/domain/partner"
	"github.com/recell/backend/internal/infrastructure/cache"
	"github.com/recell/backend/internal/interfaces/http/dto"
)

type purchaseOrderTestEnv struct {
	router     *gin.Engine
	handler    *PurchaseOrderHandler
	orderRepo  *memOrderRepo
	unitRepo   *memUnitRepo
	supplierID uuid.UUID
}

func newPurchaseOrderTestEnv(t *testing.T) *purchaseOrderTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	brandRepo := newMemBrandRepo()
	supplierRepo := newMemSupplierRepo()
	unitRepo := newMemUnitRepo()
	orderRepo := newMemOrderRepo()

	supplier, err := partner.NewSupplier("PhoneSource Ltd")
	require.NoError(t, err)
	require.NoError(t, supplierRepo.Save(context.Background(), supplier))

	resolver := catalogapp.NewBrandResolver(brandRepo)
	uow := &memReceivingUoW{orderRepo: orderRepo, unitRepo: unitRepo}
	orderService := tradeapp.NewPurchaseOrderService(orderRepo, supplierRepo, unitRepo, resolver, uow)
	inventoryService := inventoryapp.NewInventoryService(unitRepo)

	h := NewPurchaseOrderHandler(orderService, inventoryService)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	return &purchaseOrderTestEnv{
		router:     router,
		handler:    h,
		orderRepo:  orderRepo,
		unitRepo:   unitRepo,
		supplierID: supplier.ID,
	}
}

type responseEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
}

func (env *purchaseOrderTestEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var envelope responseEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func (env *purchaseOrderTestEnv) createOrder(t *testing.T, quantity int) tradeapp.PurchaseOrderResponse {
	t.Helper()
	body := map[string]interface{}{
		"supplier_id": env.supplierID,
		"order_date":  time.Now().UTC().Format(time.RFC3339),
		"notes":       "march restock",
		"items": []map[string]interface{}{
			{
				"brand_name": "Apple",
				"model":      "iPhone 13",
				"quantity":   quantity,
				"unit_cost":  "250.00",
			},
		},
	}
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order tradeapp.PurchaseOrderResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &order))
	return order
}

func receivingRecords(count int, imeiPrefix string) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, map[string]interface{}{
			"line_item_index": 0,
			"brand":           "Apple",
			"model":           "iPhone 13",
			"color":           "Midnight",
			"imei":            fmt.Sprintf("%s%02d", imeiPrefix, i),
			"condition":       "grade_a",
			"selling_price":   "399.00",
		})
	}
	return records
}

func TestPurchaseOrderHandlerCreate(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)

	order := env.createOrder(t, 2)

	assert.Equal(t, "PO-0001", order.OrderNumber)
	assert.Equal(t, "PENDING", order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestPurchaseOrderHandlerCreateUnknownSupplier(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)

	body := map[string]interface{}{
		"supplier_id": uuid.New(),
		"order_date":  time.Now().UTC().Format(time.RFC3339),
		"items": []map[string]interface{}{
			{"brand_name": "Apple", "model": "iPhone 13", "quantity": 1, "unit_cost": "250.00"},
		},
	}
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders", body, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeNotFound, envelope.Error.Code)
}

func TestPurchaseOrderHandlerGetByIDInvalidUUID(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/trade/purchase-orders/not-a-uuid", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeBadRequest, envelope.Error.Code)
}

func TestPurchaseOrderHandlerGetByOrderNumber(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	created := env.createOrder(t, 1)

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/trade/purchase-orders/number/"+created.OrderNumber, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var order tradeapp.PurchaseOrderResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &order))
	assert.Equal(t, created.ID, order.ID)
}

func TestPurchaseOrderHandlerReceive(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	order := env.createOrder(t, 2)

	body := map[string]interface{}{"records": receivingRecords(2, "3533660000000")}
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result tradeapp.ReceiveResultResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, 2, result.UnitsCreated)
	assert.Len(t, result.CreatedUnitIDs, 2)
	assert.Equal(t, "RECEIVED", result.Order.Status)

	units, err := env.unitRepo.FindBySourceOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, units, 2)
}

func TestPurchaseOrderHandlerReceiveQuantityMismatch(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	order := env.createOrder(t, 2)

	body := map[string]interface{}{"records": receivingRecords(1, "3533660000000")}
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeQuantityMismatch, envelope.Error.Code)

	units, err := env.unitRepo.FindBySourceOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestPurchaseOrderHandlerReceiveDuplicateIMEI(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	first := env.createOrder(t, 1)
	second := env.createOrder(t, 1)

	body := map[string]interface{}{"records": receivingRecords(1, "3533660000000")}
	rec, _ := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+first.ID.String()+"/receive", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+second.ID.String()+"/receive", body, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeDuplicateIMEI, envelope.Error.Code)
}

func TestPurchaseOrderHandlerReceiveAlreadyReceived(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	order := env.createOrder(t, 1)

	body := map[string]interface{}{"records": receivingRecords(1, "3533660000000")}
	rec, _ := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeInvalidState, envelope.Error.Code)
}

func TestPurchaseOrderHandlerReceiveIdempotencyReplay(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	env.handler.WithIdempotencyStore(cache.NewInMemoryIdempotencyStore(), time.Hour)
	order := env.createOrder(t, 2)

	body := map[string]interface{}{"records": receivingRecords(2, "3533660000000")}
	headers := map[string]string{IdempotencyKeyHeader: "receive-batch-7"}

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first tradeapp.ReceiveResultResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &first))

	// The replay must succeed instead of tripping the state check, and
	// must not create more units.
	rec, envelope = env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var replay tradeapp.ReceiveResultResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &replay))
	assert.Equal(t, first.UnitsCreated, replay.UnitsCreated)
	assert.Equal(t, "RECEIVED", replay.Order.Status)
	assert.ElementsMatch(t, first.CreatedUnitIDs, replay.CreatedUnitIDs)

	units, err := env.unitRepo.FindBySourceOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, units, 2)
}

func TestPurchaseOrderHandlerReceiveDifferentKeyNotSuppressed(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	env.handler.WithIdempotencyStore(cache.NewInMemoryIdempotencyStore(), time.Hour)
	order := env.createOrder(t, 1)

	body := map[string]interface{}{"records": receivingRecords(1, "3533660000000")}

	rec, _ := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, map[string]string{IdempotencyKeyHeader: "key-a"})
	require.Equal(t, http.StatusOK, rec.Code)

	// A different key is a genuinely new request and hits the state check.
	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, map[string]string{IdempotencyKeyHeader: "key-b"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeInvalidState, envelope.Error.Code)
}

func TestPurchaseOrderHandlerCancel(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	order := env.createOrder(t, 1)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cancelled tradeapp.PurchaseOrderResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &cancelled))
	assert.Equal(t, "CANCELLED", cancelled.Status)
}

func TestPurchaseOrderHandlerCancelReceivedOrder(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	order := env.createOrder(t, 1)

	body := map[string]interface{}{"records": receivingRecords(1, "3533660000000")}
	rec, _ := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/receive", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/cancel", nil, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, dto.ErrCodeInvalidState, envelope.Error.Code)
}

func TestPurchaseOrderHandlerStatusSummary(t *testing.T) {
	env := newPurchaseOrderTestEnv(t)
	env.createOrder(t, 1)
	order := env.createOrder(t, 1)

	rec, _ := env.do(t, http.MethodPost, "/api/v1/trade/purchase-orders/"+order.ID.String()+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, envelope := env.do(t, http.MethodGet, "/api/v1/trade/purchase-orders/summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary tradeapp.PurchaseOrderStatusSummary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	assert.Equal(t, int64(1), summary.Pending)
	assert.Equal(t, int64(1), summary.Cancelled)
}
