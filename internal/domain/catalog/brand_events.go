package catalog

import (
	"github.com/google/uuid"
	"github.com/recell/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBrand = "Brand"

// Event type constants
const (
	EventTypeBrandCreated = "BrandCreated"
)

// BrandCreatedEvent is raised when a new brand is created
type BrandCreatedEvent struct {
	shared.BaseDomainEvent
	BrandID uuid.UUID `json:"brand_id"`
	Name    string    `json:"name"`
}

// NewBrandCreatedEvent creates a new BrandCreatedEvent
func NewBrandCreatedEvent(brand *Brand) *BrandCreatedEvent {
	return &BrandCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBrandCreated, AggregateTypeBrand, brand.ID),
		BrandID:         brand.ID,
		Name:            brand.Name,
	}
}

// EventType returns the event type name
func (e *BrandCreatedEvent) EventType() string {
	return EventTypeBrandCreated
}
