package usecase

import (
	"context"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// DeleteUserUseCase выполняет мягкое удаление: аккаунт получает статус
// deleted, строка остается в базе.
type DeleteUserUseCase struct {
	userRepo port.UserRepositoryPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewDeleteUserUseCase(userRepo port.UserRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, cache: cache, keys: keys}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteUser",
		"user_id":  userID.String(),
	})

	ucLogger.Info("Use case started: soft deleting user", nil)

	if !canModify(actor, userID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return domain.ErrForbidden
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if user == nil || user.AccountStatus == domain.AccountDeleted {
		return domain.ErrNotFound
	}

	user.SoftDelete()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to soft delete user", err, nil)
		return err
	}

	if err := uc.cache.Delete(ctx, uc.keys.UserKeys(userID)...); err != nil {
		ucLogger.Warn("Failed to invalidate user cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: user soft deleted", nil)
	return nil
}
