package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort - контракт хранилища пользователей.
// Методы Find* возвращают (nil, nil), если запись не найдена.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error

	// FindInArea возвращает активных пользователей, чья основная локация
	// попадает в ограничивающий квадрат.
	FindInArea(ctx context.Context, area domain.BoundingBox, limit int) ([]domain.User, error)
}
