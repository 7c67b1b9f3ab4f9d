package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы событий по объявлениям.
const (
	ListingCreatedEvent     = "listing.created"
	ListingUpdatedEvent     = "listing.updated"
	ListingDeactivatedEvent = "listing.deactivated"
)

// ListingEvent — событие изменения объявления, публикуемое в брокер.
// По нему пересчитываются затронутые кластеры карты и сбрасывается кэш.
type ListingEvent struct {
	EventType  string    `json:"event_type"`
	ListingID  uuid.UUID `json:"listing_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewListingEvent собирает событие из объявления.
func NewListingEvent(eventType string, l *Listing) ListingEvent {
	return ListingEvent{
		EventType:  eventType,
		ListingID:  l.ID,
		PropertyID: l.PropertyID,
		Latitude:   l.Location.Lat,
		Longitude:  l.Location.Lon,
		Price:      l.Price,
		OccurredAt: time.Now().UTC(),
	}
}
