package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

const nearbyUsersCacheTTL = 10 * time.Minute

type FindNearbyUsersUseCase struct {
	userRepo port.UserRepositoryPort
	cache    port.CachePort
	keys     port.CacheKeysPort
}

func NewFindNearbyUsersUseCase(userRepo port.UserRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *FindNearbyUsersUseCase {
	return &FindNearbyUsersUseCase{userRepo: userRepo, cache: cache, keys: keys}
}

func (uc *FindNearbyUsersUseCase) Execute(ctx context.Context, center domain.Coordinate, radiusKm float64, limit int) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "FindNearbyUsers",
		"lat":       center.Lat,
		"lon":       center.Lon,
		"radius_km": radiusKm,
	})

	ucLogger.Info("Use case started", nil)

	area, err := domain.NewBoundingBox(center, radiusKm)
	if err != nil {
		ucLogger.Warn("Rejecting invalid search area", port.Fields{"error": err.Error()})
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	cacheKey := uc.keys.NearbyUsers(center, radiusKm)
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var users []domain.User
		if err := json.Unmarshal(cached, &users); err == nil {
			ucLogger.Debug("Serving nearby users from cache", port.Fields{"key": cacheKey})
			return users, nil
		}
	}

	users, err := uc.userRepo.FindInArea(ctx, area, limit)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, nearbyUsersCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize nearby users", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"found": len(users)})
	return users, nil
}
