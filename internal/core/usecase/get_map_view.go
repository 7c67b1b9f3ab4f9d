package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

const mapViewCacheTTL = 5 * time.Minute

// GetMapViewUseCase собирает данные для карты: объявления области,
// агрегаты и попавшие в область кластеры.
type GetMapViewUseCase struct {
	listings port.ListingStoragePort
	clusters port.ClusterStoragePort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewGetMapViewUseCase(
	listings port.ListingStoragePort,
	clusters port.ClusterStoragePort,
	cache port.CachePort,
	keys port.CacheKeysPort,
) *GetMapViewUseCase {
	return &GetMapViewUseCase{listings: listings, clusters: clusters, cache: cache, keys: keys}
}

func (uc *GetMapViewUseCase) Execute(ctx context.Context, center domain.Coordinate, radiusKm float64) (*domain.MapView, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetMapView",
		"lat":       center.Lat,
		"lon":       center.Lon,
		"radius_km": radiusKm,
	})

	ucLogger.Info("Use case started", nil)

	area, err := domain.NewBoundingBox(center, radiusKm)
	if err != nil {
		ucLogger.Warn("Rejecting invalid map area", port.Fields{"error": err.Error()})
		return nil, err
	}

	cacheKey := uc.keys.MapView(center, radiusKm)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var view domain.MapView
		if err := json.Unmarshal(cached, &view); err == nil {
			ucLogger.Debug("Serving map view from cache", port.Fields{"key": cacheKey})
			return &view, nil
		}
	}

	filters := domain.ListingFilters{OnlyActive: true, Area: &area}
	page, err := uc.listings.FindWithFilters(ctx, filters, 500, 0)
	if err != nil {
		ucLogger.Error("Storage failed to load area listings", err, nil)
		return nil, err
	}

	listingCount, propertyCount, avgPrice, err := uc.listings.AggregateArea(ctx, area)
	if err != nil {
		ucLogger.Error("Storage failed to aggregate area", err, nil)
		return nil, err
	}

	allClusters, err := uc.clusters.List(ctx)
	if err != nil {
		ucLogger.Error("Storage failed to load clusters", err, nil)
		return nil, err
	}
	visible := make([]domain.MapCluster, 0, len(allClusters))
	for _, cluster := range allClusters {
		if area.Contains(cluster.Center) {
			visible = append(visible, cluster)
		}
	}

	view := &domain.MapView{
		Listings:      page.Listings,
		ListingCount:  listingCount,
		PropertyCount: propertyCount,
		AvgPrice:      avgPrice,
		Clusters:      visible,
	}

	if payload, err := json.Marshal(view); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, mapViewCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize map view", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"listings": listingCount, "clusters": len(visible)})
	return view, nil
}
