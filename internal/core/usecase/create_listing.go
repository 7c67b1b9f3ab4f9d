package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateListingUseCase struct {
	listings   port.ListingStoragePort
	properties port.PropertyStoragePort
	events     port.ListingEventPublisherPort
	cache      port.CachePort
	keys       port.CacheKeysPort
}

func NewCreateListingUseCase(
	listings port.ListingStoragePort,
	properties port.PropertyStoragePort,
	events port.ListingEventPublisherPort,
	cache port.CachePort,
	keys port.CacheKeysPort,
) *CreateListingUseCase {
	return &CreateListingUseCase{
		listings:   listings,
		properties: properties,
		events:     events,
		cache:      cache,
		keys:       keys,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, actor *domain.Claims, listing *domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateListing"})

	ucLogger.Info("Use case started: publishing listing", nil)

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	property, err := uc.properties.FindByID(ctx, listing.PropertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error while fetching property", err, nil)
		return nil, err
	}
	if property == nil {
		vErr := domain.NewValidationError()
		vErr.Add("property_id", "property does not exist")
		return nil, vErr
	}
	if !canModify(actor, property.OwnerID) {
		ucLogger.Warn("Access denied: actor does not own the property", nil)
		return nil, domain.ErrForbidden
	}

	listing.ID = uuid.New()
	listing.UserID = actor.UserID
	listing.IsActive = true
	if listing.ListedDate.IsZero() {
		listing.ListedDate = time.Now().UTC()
	}
	// Координаты объявления берутся из адреса объекта.
	listing.Location = property.Address.Location
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.RecalculateDaysOnMarket()

	if err := listing.Validate(); err != nil {
		ucLogger.Warn("Listing validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.listings.Save(ctx, listing); err != nil {
		ucLogger.Error("Storage failed to save listing", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"listing_id": listing.ID.String()})

	// Публикация события и сброс кэша best-effort: запись уже состоялась.
	if err := uc.events.PublishListingEvent(ctx, domain.NewListingEvent(domain.ListingCreatedEvent, listing)); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}
	if err := uc.cache.Delete(ctx, uc.keys.ListingKeys(listing.ID, listing.PropertyID)...); err != nil {
		ucLogger.Warn("Failed to invalidate listing cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: listing created", nil)
	return listing, nil
}
