package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type PropertyStoragePort interface {
	Save(ctx context.Context, property *domain.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error)

	// CountInArea считает объекты, чей адрес попадает в квадрат.
	CountInArea(ctx context.Context, area domain.BoundingBox) (int, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementFavorites(ctx context.Context, id uuid.UUID) error
}
