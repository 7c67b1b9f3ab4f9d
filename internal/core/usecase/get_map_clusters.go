package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

const mapClustersCacheTTL = 10 * time.Minute

type GetMapClustersUseCase struct {
	clusters port.ClusterStoragePort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewGetMapClustersUseCase(clusters port.ClusterStoragePort, cache port.CachePort, keys port.CacheKeysPort) *GetMapClustersUseCase {
	return &GetMapClustersUseCase{clusters: clusters, cache: cache, keys: keys}
}

func (uc *GetMapClustersUseCase) Execute(ctx context.Context) ([]domain.MapCluster, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetMapClusters"})

	cacheKey := uc.keys.MapClusters()
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var clusters []domain.MapCluster
		if err := json.Unmarshal(cached, &clusters); err == nil {
			ucLogger.Debug("Serving clusters from cache", nil)
			return clusters, nil
		}
	}

	clusters, err := uc.clusters.List(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if payload, err := json.Marshal(clusters); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, mapClustersCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize clusters", port.Fields{"error": err.Error()})
		}
	}

	return clusters, nil
}
