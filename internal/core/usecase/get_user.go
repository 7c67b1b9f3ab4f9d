package usecase

import (
	"context"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetUserUseCase(userRepo port.UserRepositoryPort) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUser",
		"user_id":  userID.String(),
	})

	if !canModify(actor, userID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return nil, domain.ErrForbidden
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if user == nil || user.AccountStatus == domain.AccountDeleted {
		return nil, domain.ErrNotFound
	}

	return user, nil
}
