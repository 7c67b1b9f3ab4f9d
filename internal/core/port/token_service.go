package port

import (
	"context"
	"time"

	"marketplace-service/internal/core/domain"
)

// TokenServicePort - контракт сервиса JWT токенов.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
