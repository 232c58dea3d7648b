package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/recell/backend/internal/application/catalog"
)

// BrandHandler handles brand-related API endpoints
type BrandHandler struct {
	BaseHandler
	brandService *catalogapp.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService *catalogapp.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// Create godoc
// @Summary      Create a brand
// @Description  Create a brand. Creation is idempotent on the normalized
// @Description  name: posting an existing name returns the existing brand.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateBrandRequest true "Brand creation request"
// @Success      201 {object} dto.Response{data=catalog.BrandResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.brandService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, brand)
}

// GetByID godoc
// @Summary      Get brand by ID
// @Tags         brands
// @Produce      json
// @Param        id path string true "Brand ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalog.BrandResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/brands/{id} [get]
func (h *BrandHandler) GetByID(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid brand ID format")
		return
	}

	brand, err := h.brandService.GetByID(c.Request.Context(), brandID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, brand)
}

// GetByName godoc
// @Summary      Get brand by name
// @Description  Lookup is case-insensitive and ignores surrounding whitespace.
// @Tags         brands
// @Produce      json
// @Param        name path string true "Brand name"
// @Success      200 {object} dto.Response{data=catalog.BrandResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/brands/name/{name} [get]
func (h *BrandHandler) GetByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		h.BadRequest(c, "Brand name is required")
		return
	}

	brand, err := h.brandService.GetByName(c.Request.Context(), name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, brand)
}

// List godoc
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Param        search query string false "Search term (name)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=[]catalog.BrandResponse,meta=dto.Meta}
// @Router       /catalog/brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	var filter catalogapp.BrandListFilter
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

	brands, total, err := h.brandService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, brands, total, filter.Page, filter.PageSize)
}

// Rename godoc
// @Summary      Rename a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        id path string true "Brand ID" format(uuid)
// @Param        request body catalog.RenameBrandRequest true "New brand name"
// @Success      200 {object} dto.Response{data=catalog.BrandResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/brands/{id} [put]
func (h *BrandHandler) Rename(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid brand ID format")
		return
	}

	var req catalogapp.RenameBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	brand, err := h.brandService.Rename(c.Request.Context(), brandID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, brand)
}

// RegisterRoutes registers brand routes on the given router group
func (h *BrandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/catalog/brands")
	{
		brands.POST("", h.Create)
		brands.GET("", h.List)
		brands.GET("/:id", h.GetByID)
		brands.GET("/name/:name", h.GetByName)
		brands.PUT("/:id", h.Rename)
	}
}
