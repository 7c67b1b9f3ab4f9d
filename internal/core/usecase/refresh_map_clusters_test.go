package usecase

import (
	"context"
	"testing"

	"marketplace-service/internal/adapters/rediscache"
	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshMapClustersAll(t *testing.T) {
	clusters := &fakeClusterStorage{clusters: []domain.MapCluster{
		{ID: uuid.New(), Name: "downtown", Center: domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, RadiusKm: 5},
		{ID: uuid.New(), Name: "uptown", Center: domain.Coordinate{Lat: 40.8116, Lon: -73.9465}, RadiusKm: 3},
	}}
	listings := &fakeListingStorage{aggListings: 12, aggProperties: 9, aggAvgPrice: 325000}
	cache := newFakeCache()
	keys := rediscache.NewKeyBuilder()

	uc := NewRefreshMapClustersUseCase(clusters, listings, cache, keys)

	refreshed, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	require.Len(t, clusters.updated, 2)

	for _, c := range clusters.updated {
		assert.Equal(t, 12, c.ListingCount)
		assert.Equal(t, 9, c.PropertyCount)
		assert.Equal(t, 325000.0, c.AvgPrice)
		assert.False(t, c.LastUpdated.IsZero())
	}

	// После пересчета кэш карты и списка кластеров сброшен.
	assert.Contains(t, cache.deleted, keys.MapClusters())
}

func TestRefreshMapClustersByPoint(t *testing.T) {
	downtown := domain.MapCluster{ID: uuid.New(), Name: "downtown", Center: domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, RadiusKm: 5}
	uptown := domain.MapCluster{ID: uuid.New(), Name: "uptown", Center: domain.Coordinate{Lat: 40.8116, Lon: -73.9465}, RadiusKm: 3}
	clusters := &fakeClusterStorage{clusters: []domain.MapCluster{downtown, uptown}}
	listings := &fakeListingStorage{aggListings: 4, aggProperties: 4, aggAvgPrice: 210000}

	uc := NewRefreshMapClustersUseCase(clusters, listings, newFakeCache(), rediscache.NewKeyBuilder())

	// Точка в центре downtown не попадает в uptown.
	point := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
	refreshed, err := uc.Execute(context.Background(), &point)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
	require.Len(t, clusters.updated, 1)
	assert.Equal(t, downtown.ID, clusters.updated[0].ID)
}

func TestRefreshMapClustersRejectsInvalidPoint(t *testing.T) {
	uc := NewRefreshMapClustersUseCase(&fakeClusterStorage{}, &fakeListingStorage{}, newFakeCache(), rediscache.NewKeyBuilder())

	point := domain.Coordinate{Lat: 120, Lon: 0}
	_, err := uc.Execute(context.Background(), &point)
	assert.Error(t, err)
}
