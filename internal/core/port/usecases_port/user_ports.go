package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetUserUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) (*domain.User, error)
}

type UpdateUserUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, user *domain.User) (*domain.User, error)
}

// DeleteUserUseCase выполняет мягкое удаление аккаунта.
type DeleteUserUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) error
}

type FindNearbyUsersUseCase interface {
	Execute(ctx context.Context, center domain.Coordinate, radiusKm float64, limit int) ([]domain.User, error)
}

type GetSearchPreferencesUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) (*domain.SearchPreferences, error)
}

type UpdateSearchPreferencesUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID, prefs domain.SearchPreferences) error
}
