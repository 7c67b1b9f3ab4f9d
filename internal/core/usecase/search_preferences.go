package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type GetSearchPreferencesUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetSearchPreferencesUseCase(userRepo port.UserRepositoryPort) *GetSearchPreferencesUseCase {
	return &GetSearchPreferencesUseCase{userRepo: userRepo}
}

func (uc *GetSearchPreferencesUseCase) Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID) (*domain.SearchPreferences, error) {
	if !canModify(actor, userID) {
		return nil, domain.ErrForbidden
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.AccountStatus == domain.AccountDeleted {
		return nil, domain.ErrNotFound
	}

	return &user.SearchPreferences, nil
}

type UpdateSearchPreferencesUseCase struct {
	userRepo port.UserRepositoryPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewUpdateSearchPreferencesUseCase(userRepo port.UserRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *UpdateSearchPreferencesUseCase {
	return &UpdateSearchPreferencesUseCase{userRepo: userRepo, cache: cache, keys: keys}
}

func (uc *UpdateSearchPreferencesUseCase) Execute(ctx context.Context, actor *domain.Claims, userID uuid.UUID, prefs domain.SearchPreferences) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateSearchPreferences",
		"user_id":  userID.String(),
	})

	if !canModify(actor, userID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if prefs.MinPrice != nil && prefs.MaxPrice != nil && *prefs.MinPrice > *prefs.MaxPrice {
		vErr.Add("min_price", "must be <= max_price")
	}
	if prefs.MinBedrooms != nil && *prefs.MinBedrooms < 0 {
		vErr.Add("min_bedrooms", "must be >= 0")
	}
	if vErr.HasErrors() {
		return vErr
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if user == nil || user.AccountStatus == domain.AccountDeleted {
		return domain.ErrNotFound
	}

	user.SearchPreferences = prefs
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		ucLogger.Error("Repository failed to update preferences", err, nil)
		return err
	}

	if err := uc.cache.Delete(ctx, uc.keys.UserKeys(userID)...); err != nil {
		ucLogger.Warn("Failed to invalidate user cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished: preferences updated", nil)
	return nil
}
