package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

const listingDetailCacheTTL = 5 * time.Minute

type GetListingDetailsUseCase struct {
	listings port.ListingStoragePort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewGetListingDetailsUseCase(listings port.ListingStoragePort, cache port.CachePort, keys port.CacheKeysPort) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{listings: listings, cache: cache, keys: keys}
}

func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, listingID uuid.UUID) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingDetails",
		"listing_id": listingID.String(),
	})

	// Просмотр считается при каждом чтении карточки, включая попадания
	// в кэш. Счетчик best-effort.
	if err := uc.listings.IncrementViews(ctx, listingID); err != nil {
		ucLogger.Warn("Failed to increment listing views", port.Fields{"error": err.Error()})
	}

	cacheKey := uc.keys.ListingDetail(listingID)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var listing domain.Listing
		if err := json.Unmarshal(cached, &listing); err == nil {
			ucLogger.Debug("Serving listing from cache", port.Fields{"key": cacheKey})
			return &listing, nil
		}
	}

	listing, err := uc.listings.FindByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}

	if payload, err := json.Marshal(listing); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, listingDetailCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize listing", port.Fields{"error": err.Error()})
		}
	}

	return listing, nil
}
