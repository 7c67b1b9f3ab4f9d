package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, email, password, role string) (*domain.User, string, error)
}

type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}

type ValidateTokenUseCase interface {
	Execute(ctx context.Context, token string) (*domain.Claims, error)
}
