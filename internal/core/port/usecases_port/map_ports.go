package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"
)

type GetMapViewUseCase interface {
	Execute(ctx context.Context, center domain.Coordinate, radiusKm float64) (*domain.MapView, error)
}

type GetMapClustersUseCase interface {
	Execute(ctx context.Context) ([]domain.MapCluster, error)
}

// RefreshMapClustersUseCase пересчитывает агрегаты кластеров.
// point == nil означает пересчет всех кластеров.
type RefreshMapClustersUseCase interface {
	Execute(ctx context.Context, point *domain.Coordinate) (int, error)
}
