package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/catalog"
	"github.com/recell/backend/internal/domain/shared"
)

// BrandService handles brand business operations
type BrandService struct {
	brandRepo      catalog.BrandRepository
	eventPublisher shared.EventPublisher
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo catalog.BrandRepository) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BrandService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a brand. Creation is idempotent on the normalized name:
// submitting an existing name returns the existing brand.
func (s *BrandService) Create(ctx context.Context, req CreateBrandRequest) (*BrandResponse, error) {
	brand, err := catalog.NewBrand(req.Name)
	if err != nil {
		return nil, err
	}

	persisted, err := s.brandRepo.Upsert(ctx, brand)
	if err != nil {
		return nil, err
	}

	if persisted.ID == brand.ID {
		s.publishEvents(ctx, brand)
	}

	response := ToBrandResponse(persisted)
	return &response, nil
}

// GetByID retrieves a brand by ID
func (s *BrandService) GetByID(ctx context.Context, id uuid.UUID) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBrandResponse(brand)
	return &response, nil
}

// GetByName retrieves a brand by name, matched case-insensitively
func (s *BrandService) GetByName(ctx context.Context, name string) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	response := ToBrandResponse(brand)
	return &response, nil
}

// List retrieves brands with filtering and pagination
func (s *BrandService) List(ctx context.Context, filter BrandListFilter) ([]BrandResponse, int64, error) {
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

	brands, err := s.brandRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.brandRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToBrandResponses(brands), total, nil
}

// Rename renames a brand
func (s *BrandService) Rename(ctx context.Context, id uuid.UUID, req RenameBrandRequest) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := brand.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := ToBrandResponse(brand)
	return &response, nil
}

func (s *BrandService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Events are best-effort notifications; a publish failure never
	// fails the operation that raised them.
	_ = s.eventPublisher.Publish(ctx, events...)
	aggregate.ClearDomainEvents()
}
