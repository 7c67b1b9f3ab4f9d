package usecase

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

const activeConfigCacheTTL = 15 * time.Minute

// SaveSystemConfigUseCase сохраняет конфигурацию системы.
// Инвариант: активной остается максимум одна запись — хранилище
// деактивирует остальные в той же транзакции записи.
type SaveSystemConfigUseCase struct {
	configs port.SystemConfigRepositoryPort
	cache   port.CachePort
	keys    port.CacheKeysPort
}

func NewSaveSystemConfigUseCase(configs port.SystemConfigRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *SaveSystemConfigUseCase {
	return &SaveSystemConfigUseCase{configs: configs, cache: cache, keys: keys}
}

func (uc *SaveSystemConfigUseCase) Execute(ctx context.Context, actor *domain.Claims, cfg *domain.SystemConfig) (*domain.SystemConfig, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SaveSystemConfig"})

	if !actor.IsAdmin() {
		ucLogger.Warn("Access denied: admin only", nil)
		return nil, domain.ErrForbidden
	}

	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
		cfg.CreatedAt = time.Now().UTC()
	}
	cfg.UpdatedAt = time.Now().UTC()

	if err := uc.configs.Save(ctx, cfg); err != nil {
		ucLogger.Error("Repository failed to save config", err, nil)
		return nil, err
	}

	if err := uc.cache.Delete(ctx, uc.keys.ActiveConfig()); err != nil {
		ucLogger.Warn("Failed to invalidate config cache", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("System config saved", port.Fields{"config_id": cfg.ID.String(), "is_active": cfg.IsActive})
	return cfg, nil
}

type GetActiveConfigUseCase struct {
	configs port.SystemConfigRepositoryPort
	cache   port.CachePort
	keys    port.CacheKeysPort
}

func NewGetActiveConfigUseCase(configs port.SystemConfigRepositoryPort, cache port.CachePort, keys port.CacheKeysPort) *GetActiveConfigUseCase {
	return &GetActiveConfigUseCase{configs: configs, cache: cache, keys: keys}
}

func (uc *GetActiveConfigUseCase) Execute(ctx context.Context) (*domain.SystemConfig, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetActiveConfig"})

	cacheKey := uc.keys.ActiveConfig()
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var cfg domain.SystemConfig
		if err := json.Unmarshal(cached, &cfg); err == nil {
			return &cfg, nil
		}
	}

	cfg, err := uc.configs.GetActive(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}

	if payload, err := json.Marshal(cfg); err == nil {
		if err := uc.cache.Set(ctx, cacheKey, payload, activeConfigCacheTTL); err != nil {
			ucLogger.Warn("Failed to memoize active config", port.Fields{"error": err.Error()})
		}
	}

	return cfg, nil
}

type ListSystemConfigsUseCase struct {
	configs port.SystemConfigRepositoryPort
}

func NewListSystemConfigsUseCase(configs port.SystemConfigRepositoryPort) *ListSystemConfigsUseCase {
	return &ListSystemConfigsUseCase{configs: configs}
}

func (uc *ListSystemConfigsUseCase) Execute(ctx context.Context, actor *domain.Claims) ([]domain.SystemConfig, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.configs.List(ctx)
}
