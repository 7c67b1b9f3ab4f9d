package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

// RefreshMapClustersUseCase пересчитывает агрегаты кластеров карты:
// количество объявлений, количество объектов и среднюю цену внутри
// квадрата каждого кластера. Пересчет read-then-write, без транзакции:
// при гонке побеждает последняя запись, значения справочные.
type RefreshMapClustersUseCase struct {
	clusters port.ClusterStoragePort
	listings port.ListingStoragePort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewRefreshMapClustersUseCase(
	clusters port.ClusterStoragePort,
	listings port.ListingStoragePort,
	cache port.CachePort,
	keys port.CacheKeysPort,
) *RefreshMapClustersUseCase {
	return &RefreshMapClustersUseCase{clusters: clusters, listings: listings, cache: cache, keys: keys}
}

// Execute пересчитывает кластеры. point != nil ограничивает пересчет
// кластерами, содержащими точку (путь обработки события об объявлении);
// point == nil пересчитывает все (административный запуск).
func (uc *RefreshMapClustersUseCase) Execute(ctx context.Context, point *domain.Coordinate) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "RefreshMapClusters"})

	ucLogger.Info("Use case started: recomputing cluster aggregates", nil)

	var clusters []domain.MapCluster
	var err error
	if point != nil {
		if vErr := point.Validate(); vErr != nil {
			return 0, vErr
		}
		clusters, err = uc.clusters.FindContaining(ctx, *point)
	} else {
		clusters, err = uc.clusters.List(ctx)
	}
	if err != nil {
		ucLogger.Error("Storage failed to load clusters", err, nil)
		return 0, err
	}

	refreshed := 0
	for i := range clusters {
		cluster := clusters[i]
		area, err := domain.NewBoundingBox(cluster.Center, cluster.RadiusKm)
		if err != nil {
			// Кластер с испорченным центром пропускаем, остальные считаем.
			ucLogger.Warn("Skipping cluster with invalid center", port.Fields{
				"cluster_id": cluster.ID.String(),
				"error":      err.Error(),
			})
			continue
		}

		listingCount, propertyCount, avgPrice, err := uc.listings.AggregateArea(ctx, area)
		if err != nil {
			ucLogger.Error("Failed to aggregate cluster area", err, port.Fields{"cluster_id": cluster.ID.String()})
			return refreshed, err
		}

		cluster.ListingCount = listingCount
		cluster.PropertyCount = propertyCount
		cluster.AvgPrice = avgPrice
		cluster.LastUpdated = time.Now().UTC()

		if err := uc.clusters.UpdateAggregates(ctx, &cluster); err != nil {
			ucLogger.Error("Failed to persist cluster aggregates", err, port.Fields{"cluster_id": cluster.ID.String()})
			return refreshed, err
		}
		refreshed++
	}

	// Карта и список кластеров могли устареть.
	if err := uc.cache.Delete(ctx, uc.keys.MapKeys()...); err != nil {
		ucLogger.Warn("Failed to invalidate map cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished", port.Fields{"clusters_refreshed": refreshed})
	return refreshed, nil
}
