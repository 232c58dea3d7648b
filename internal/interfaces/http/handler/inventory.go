package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/recell/backend/internal/application/inventory"
)

// InventoryHandler handles inventory unit API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// GetByID godoc
// @Summary      Get inventory unit by ID
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Inventory unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventory.InventoryUnitResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/units/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid inventory unit ID format")
		return
	}

	unit, err := h.inventoryService.GetByID(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// GetByIMEI godoc
// @Summary      Get inventory unit by IMEI
// @Tags         inventory
// @Produce      json
// @Param        imei path string true "Unit IMEI"
// @Success      200 {object} dto.Response{data=inventory.InventoryUnitResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/units/imei/{imei} [get]
func (h *InventoryHandler) GetByIMEI(c *gin.Context) {
	imei := c.Param("imei")
	if imei == "" {
		h.BadRequest(c, "IMEI is required")
		return
	}

	unit, err := h.inventoryService.GetByIMEI(c.Request.Context(), imei)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// List godoc
// @Summary      List inventory units
// @Tags         inventory
// @Produce      json
// @Param        search query string false "Search term (model, IMEI, color)"
// @Param        status query string false "Unit status" Enums(AVAILABLE, SOLD, RETURNED)
// @Param        brand_id query string false "Brand ID" format(uuid)
// @Param        supplier_id query string false "Supplier ID" format(uuid)
// @Param        source_order_id query string false "Source purchase order ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]inventory.InventoryUnitResponse,meta=dto.Meta}
// @Router       /inventory/units [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventoryapp.InventoryUnitListFilter
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

	units, total, err := h.inventoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, units, total, filter.Page, filter.PageSize)
}

// ListBySourceOrder godoc
// @Summary      List units received from a purchase order
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]inventory.InventoryUnitResponse}
// @Router       /inventory/units/source-order/{id} [get]
func (h *InventoryHandler) ListBySourceOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	units, err := h.inventoryService.ListBySourceOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

// UpdateSellingPrice godoc
// @Summary      Update a unit's selling price
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Inventory unit ID" format(uuid)
// @Param        request body inventory.UpdateSellingPriceRequest true "New selling price"
// @Success      200 {object} dto.Response{data=inventory.InventoryUnitResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/units/{id}/selling-price [put]
func (h *InventoryHandler) UpdateSellingPrice(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid inventory unit ID format")
		return
	}

	var req inventoryapp.UpdateSellingPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.inventoryService.UpdateSellingPrice(c.Request.Context(), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// MarkSold godoc
// @Summary      Mark an available unit as sold
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Inventory unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventory.InventoryUnitResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/units/{id}/sell [post]
func (h *InventoryHandler) MarkSold(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid inventory unit ID format")
		return
	}

	unit, err := h.inventoryService.MarkSold(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// MarkReturned godoc
// @Summary      Mark a sold unit as returned
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Inventory unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventory.InventoryUnitResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /inventory/units/{id}/return [post]
func (h *InventoryHandler) MarkReturned(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid inventory unit ID format")
		return
	}

	unit, err := h.inventoryService.MarkReturned(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// StatusSummary godoc
// @Summary      Inventory unit counts by status
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=inventory.InventoryStatusSummary}
// @Router       /inventory/units/summary [get]
func (h *InventoryHandler) StatusSummary(c *gin.Context) {
	summary, err := h.inventoryService.GetStatusSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RegisterRoutes registers inventory routes on the given router group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/inventory/units")
	{
		units.GET("", h.List)
		units.GET("/summary", h.StatusSummary)
		units.GET("/imei/:imei", h.GetByIMEI)
		units.GET("/source-order/:id", h.ListBySourceOrder)
		units.GET("/:id", h.GetByID)
		units.PUT("/:id/selling-price", h.UpdateSellingPrice)
		units.POST("/:id/sell", h.MarkSold)
		units.POST("/:id/return", h.MarkReturned)
	}
}
