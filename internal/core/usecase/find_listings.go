package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

const listingsListCacheTTL = 5 * time.Minute

type FindListingsUseCase struct {
	listings port.ListingStoragePort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewFindListingsUseCase(listings port.ListingStoragePort, cache port.CachePort, keys port.CacheKeysPort) *FindListingsUseCase {
	return &FindListingsUseCase{listings: listings, cache: cache, keys: keys}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, page domain.Pagination) (*domain.PaginatedListings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindListings",
		"page":     page.Page,
		"per_page": page.PerPage,
	})

	ucLogger.Info("Use case started", nil)

	cacheKey := uc.keys.ListingsList(filters, page)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var result domain.PaginatedListings
		if err := json.Unmarshal(cached, &result); err == nil {
			ucLogger.Debug("Serving listings from cache", port.Fields{"key": cacheKey})
			return &result, nil
		}
	}

	result, err := uc.listings.FindWithFilters(ctx, filters, page.PerPage, page.Offset())
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	result.CurrentPage = page.Page
	result.ItemsPerPage = page.PerPage

	if payload, err := json.Marshal(result); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, listingsListCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize listings page", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"total": result.TotalCount})
	return result, nil
}
