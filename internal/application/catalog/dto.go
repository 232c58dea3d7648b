package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/catalog"
)

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// RenameBrandRequest represents a request to rename a brand
type RenameBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// BrandListFilter represents filter options for brand list
type BrandListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBrandResponse converts a domain brand to a response DTO
func ToBrandResponse(brand *catalog.Brand) BrandResponse {
	return BrandResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
		UpdatedAt: brand.UpdatedAt,
	}
}

// ToBrandResponses converts a slice of domain brands to response DTOs
func ToBrandResponses(brands []catalog.Brand) []BrandResponse {
	responses := make([]BrandResponse, len(brands))
	for i := range brands {
		responses[i] = ToBrandResponse(&brands[i])
	}
	return responses
}
