package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

type UpdateListingUseCase struct {
	listings port.ListingStoragePort
	events   port.ListingEventPublisherPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewUpdateListingUseCase(
	listings port.ListingStoragePort,
	events port.ListingEventPublisherPort,
	cache port.CachePort,
	keys port.CacheKeysPort,
) *UpdateListingUseCase {
	return &UpdateListingUseCase{listings: listings, events: events, cache: cache, keys: keys}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, actor *domain.Claims, listing *domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": listing.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.listings.FindByID(ctx, listing.ID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if !canModify(actor, existing.UserID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return nil, domain.ErrForbidden
	}

	// Неизменяемые через этот сценарий поля.
	listing.UserID = existing.UserID
	listing.PropertyID = existing.PropertyID
	listing.Location = existing.Location
	listing.CreatedAt = existing.CreatedAt
	listing.ViewsCount = existing.ViewsCount
	listing.InquiresCount = existing.InquiresCount
	listing.UpdatedAt = time.Now().UTC()
	listing.RecalculateDaysOnMarket()

	if err := listing.Validate(); err != nil {
		ucLogger.Warn("Listing validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.listings.Update(ctx, listing); err != nil {
		ucLogger.Error("Storage failed to update listing", err, nil)
		return nil, err
	}

	// Изменение цены фиксируем в истории.
	if existing.Price != listing.Price {
		entry := domain.NewPriceHistory(listing.ID, existing.Price, listing.Price)
		if err := uc.listings.SavePriceHistory(ctx, entry); err != nil {
			ucLogger.Warn("Failed to record price history", port.Fields{"error": err.Error()})
		}
	}

	if err := uc.events.PublishListingEvent(ctx, domain.NewListingEvent(domain.ListingUpdatedEvent, listing)); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}
	if err := uc.cache.Delete(ctx, uc.keys.ListingKeys(listing.ID, listing.PropertyID)...); err != nil {
		ucLogger.Warn("Failed to invalidate listing cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: listing updated", nil)
	return listing, nil
}
