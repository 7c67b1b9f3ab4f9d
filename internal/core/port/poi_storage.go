package port

import (
	"context"

	"marketplace-service/internal/core/domain"
)

// PoiStoragePort — хранилище точек интереса (транспорт, школы) для
// расчета расстояний от объектов недвижимости.
type PoiStoragePort interface {
	SaveTransitStation(ctx context.Context, station *domain.TransitStation) error
	SaveSchool(ctx context.Context, school *domain.School) error
	FindTransitInArea(ctx context.Context, area domain.BoundingBox) ([]domain.TransitStation, error)
	FindSchoolsInArea(ctx context.Context, area domain.BoundingBox) ([]domain.School, error)
}
