package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/recell/backend/internal/application/inventory"
	tradeapp "github.com/recell/backend/internal/application/trade"
	"github.com/recell/backend/internal/domain/shared"
)

// IdempotencyKeyHeader carries the client-chosen key that makes a
// receive request safe to retry.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService     *tradeapp.PurchaseOrderService
	inventoryService *inventoryapp.InventoryService
	idempotency      shared.IdempotencyStore
	idempotencyTTL   time.Duration
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(
	orderService *tradeapp.PurchaseOrderService,
	inventoryService *inventoryapp.InventoryService,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService:     orderService,
		inventoryService: inventoryService,
	}
}

// WithIdempotencyStore enables receive-request deduplication via the
// X-Idempotency-Key header. Without a store the header is ignored.
func (h *PurchaseOrderHandler) WithIdempotencyStore(store shared.IdempotencyStore, ttl time.Duration) *PurchaseOrderHandler {
	h.idempotency = store
	h.idempotencyTTL = ttl
	return h
}

// Create godoc
// @Summary      Create a purchase order
// @Description  Creates a purchase order in PENDING status with an
// @Description  allocated PO-NNNN order number.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        request body trade.CreatePurchaseOrderRequest true "Purchase order creation request"
// @Success      201 {object} dto.Response{data=trade.PurchaseOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID godoc
// @Summary      Get purchase order by ID
// @Tags         purchase-orders
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=trade.PurchaseOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByOrderNumber godoc
// @Summary      Get purchase order by order number
// @Tags         purchase-orders
// @Produce      json
// @Param        number path string true "Order number (PO-NNNN)"
// @Success      200 {object} dto.Response{data=trade.PurchaseOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/number/{number} [get]
func (h *PurchaseOrderHandler) GetByOrderNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	order, err := h.orderService.GetByOrderNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Param        search query string false "Search term (order number)"
// @Param        status query string false "Order status" Enums(PENDING, RECEIVED, CANCELLED)
// @Param        supplier_id query string false "Supplier ID" format(uuid)
// @Param        start_date query string false "Order date lower bound (RFC3339)"
// @Param        end_date query string false "Order date upper bound (RFC3339)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]trade.PurchaseOrderListItemResponse,meta=dto.Meta}
// @Router       /trade/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter tradeapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update a pending purchase order
// @Description  Only PENDING orders can be updated. Line items are fixed
// @Description  at creation; supplier, date and notes may change.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Param        request body trade.UpdatePurchaseOrderRequest true "Purchase order update request"
// @Success      200 {object} dto.Response{data=trade.PurchaseOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req tradeapp.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel godoc
// @Summary      Cancel a pending purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=trade.PurchaseOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Receive godoc
// @Summary      Receive a purchase order into inventory
// @Description  Validates the received units against the ordered
// @Description  quantities, creates one inventory unit per phone and
// @Description  flips the order to RECEIVED in a single transaction.
// @Description  Send an X-Idempotency-Key header to make retries safe:
// @Description  a replayed key returns the already-received result.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        X-Idempotency-Key header string false "Client-chosen idempotency key"
// @Param        id path string true "Purchase order ID" format(uuid)
// @Param        request body trade.ReceivePurchaseOrderRequest true "Receiving records"
// @Success      200 {object} dto.Response{data=trade.ReceiveResultResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req tradeapp.ReceivePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
	if key, ok := h.receiveKey(orderID, idempotencyKey); ok {
		processed, err := h.idempotency.IsProcessed(c.Request.Context(), key)
		if err == nil && processed {
			result, err := h.replayedReceiveResult(c, orderID)
			if err != nil {
				h.HandleError(c, err)
				return
			}
			h.Success(c, result)
			return
		}
	}

	result, err := h.orderService.Receive(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if key, ok := h.receiveKey(orderID, idempotencyKey); ok {
		// Best effort: a failed mark only costs one lost replay.
		_, _ = h.idempotency.MarkProcessed(c.Request.Context(), key, h.idempotencyTTL)
	}

	h.Success(c, result)
}

// receiveKey scopes the client key to the order so the same key cannot
// suppress receives of other orders.
func (h *PurchaseOrderHandler) receiveKey(orderID uuid.UUID, clientKey string) (string, bool) {
	if h.idempotency == nil || clientKey == "" {
		return "", false
	}
	return "po-receive:" + orderID.String() + ":" + clientKey, true
}

// replayedReceiveResult rebuilds the receive outcome for a key that was
// already processed: the order plus the units it produced.
func (h *PurchaseOrderHandler) replayedReceiveResult(c *gin.Context, orderID uuid.UUID) (*tradeapp.ReceiveResultResponse, error) {
	order, err := h.orderService.GetByID(c.Request.Context(), orderID)
	if err != nil {
		return nil, err
	}

	units, err := h.inventoryService.ListBySourceOrder(c.Request.Context(), orderID)
	if err != nil {
		return nil, err
	}

	unitIDs := make([]uuid.UUID, len(units))
	for i := range units {
		unitIDs[i] = units[i].ID
	}

	return &tradeapp.ReceiveResultResponse{
		Order:          *order,
		UnitsCreated:   len(units),
		CreatedUnitIDs: unitIDs,
	}, nil
}

// Delete godoc
// @Summary      Delete a cancelled purchase order
// @Tags         purchase-orders
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /trade/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), orderID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// StatusSummary godoc
// @Summary      Purchase order counts by status
// @Tags         purchase-orders
// @Produce      json
// @Success      200 {object} dto.Response{data=trade.PurchaseOrderStatusSummary}
// @Router       /trade/purchase-orders/summary [get]
func (h *PurchaseOrderHandler) StatusSummary(c *gin.Context) {
	summary, err := h.orderService.GetStatusSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RegisterRoutes registers purchase order routes on the given router group
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/trade/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/summary", h.StatusSummary)
		orders.GET("/number/:number", h.GetByOrderNumber)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.POST("/:id/cancel", h.Cancel)
		orders.POST("/:id/receive", h.Receive)
		orders.DELETE("/:id", h.Delete)
	}
}
