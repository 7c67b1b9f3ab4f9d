package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type ListingStoragePort interface {
	Save(ctx context.Context, listing *domain.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error

	// Deactivate снимает объявление с публикации, строка остается.
	Deactivate(ctx context.Context, id uuid.UUID) error

	FindWithFilters(ctx context.Context, filters domain.ListingFilters, limit, offset int) (*domain.PaginatedListings, error)

	// AggregateArea возвращает количество активных объявлений, количество
	// уникальных объектов и среднюю цену в квадрате. Используется
	// агрегатором кластеров и картой.
	AggregateArea(ctx context.Context, area domain.BoundingBox) (listings int, properties int, avgPrice float64, err error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementInquiries(ctx context.Context, id uuid.UUID) error

	SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error
	GetPriceHistory(ctx context.Context, listingID uuid.UUID) ([]domain.PriceHistory, error)
}

type OpenHouseStoragePort interface {
	Save(ctx context.Context, oh *domain.OpenHouse) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.OpenHouse, error)
	Update(ctx context.Context, oh *domain.OpenHouse) error
	ListUpcoming(ctx context.Context, limit, offset int) ([]domain.OpenHouse, error)
}

type ClusterStoragePort interface {
	List(ctx context.Context) ([]domain.MapCluster, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MapCluster, error)

	// FindContaining возвращает кластеры, чей квадрат содержит точку.
	FindContaining(ctx context.Context, point domain.Coordinate) ([]domain.MapCluster, error)

	Save(ctx context.Context, cluster *domain.MapCluster) error

	// UpdateAggregates записывает пересчитанные счетчики и среднюю цену.
	// Последняя запись побеждает, значения справочные.
	UpdateAggregates(ctx context.Context, cluster *domain.MapCluster) error
}
