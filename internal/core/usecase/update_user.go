package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

type UpdateUserUseCase struct {
	userRepo port.UserRepositoryPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewUpdateUserUseCase(userRepo port.UserRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, cache: cache, keys: keys}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, actor *domain.Claims, user *domain.User) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateUser",
		"user_id":  user.ID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if !canModify(actor, user.ID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return nil, domain.ErrForbidden
	}

	existing, err := uc.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil || existing.AccountStatus == domain.AccountDeleted {
		return nil, domain.ErrNotFound
	}

	if user.Location != nil {
		if err := user.Location.Validate(); err != nil {
			vErr := domain.NewValidationError()
			vErr.Add("location", err.Error())
			return nil, vErr
		}
	}

	// Email, хэш пароля и роль через этот сценарий не меняются.
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Phone = user.Phone
	existing.Location = user.Location
	existing.PrivacyLevel = user.PrivacyLevel
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		ucLogger.Error("Repository failed to update user", err, nil)
		return nil, err
	}

	// После записи сбрасываем ровно те ключи, которые могли устареть.
	if err := uc.cache.Delete(ctx, uc.keys.UserKeys(existing.ID)...); err != nil {
		ucLogger.Warn("Failed to invalidate user cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: user updated", nil)
	return existing, nil
}
