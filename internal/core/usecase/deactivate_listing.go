package usecase

import (
	"context"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// DeactivateListingUseCase снимает объявление с публикации.
// Запись остается в хранилище, физического удаления нет.
type DeactivateListingUseCase struct {
	listings port.ListingStoragePort
	events   port.ListingEventPublisherPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewDeactivateListingUseCase(
	listings port.ListingStoragePort,
	events port.ListingEventPublisherPort,
	cache port.CachePort,
	keys port.CacheKeysPort,
) *DeactivateListingUseCase {
	return &DeactivateListingUseCase{listings: listings, events: events, cache: cache, keys: keys}
}

func (uc *DeactivateListingUseCase) Execute(ctx context.Context, actor *domain.Claims, listingID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeactivateListing",
		"listing_id": listingID.String(),
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}
	if !canModify(actor, listing.UserID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return domain.ErrForbidden
	}

	if err := uc.listings.Deactivate(ctx, listingID); err != nil {
		ucLogger.Error("Storage failed to deactivate listing", err, nil)
		return err
	}

	listing.IsActive = false
	if err := uc.events.PublishListingEvent(ctx, domain.NewListingEvent(domain.ListingDeactivatedEvent, listing)); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}
	if err := uc.cache.Delete(ctx, uc.keys.ListingKeys(listingID, listing.PropertyID)...); err != nil {
		ucLogger.Warn("Failed to invalidate listing cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: listing deactivated", nil)
	return nil
}
