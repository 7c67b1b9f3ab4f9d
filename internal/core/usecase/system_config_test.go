package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace-service/internal/adapters/rediscache"
	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSystemConfigSingleActive(t *testing.T) {
	repo := newFakeConfigRepo()
	cache := newFakeCache()
	keys := rediscache.NewKeyBuilder()
	uc := NewSaveSystemConfigUseCase(repo, cache, keys)

	admin := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}

	first, err := uc.Execute(context.Background(), admin, &domain.SystemConfig{SiteName: "one", IsActive: true})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), admin, &domain.SystemConfig{SiteName: "two", IsActive: true})
	require.NoError(t, err)

	// Первая конфигурация деактивирована, активна ровно одна.
	active, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "two", active.SiteName)
	assert.False(t, repo.configs[first.ID].IsActive)

	// Точечная инвалидация ключа активной конфигурации.
	assert.Contains(t, cache.deleted, keys.ActiveConfig())
}

func TestSaveSystemConfigAdminOnly(t *testing.T) {
	uc := NewSaveSystemConfigUseCase(newFakeConfigRepo(), newFakeCache(), rediscache.NewKeyBuilder())

	_, err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New(), Role: domain.RoleBuyer}, &domain.SystemConfig{})
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = uc.Execute(context.Background(), nil, &domain.SystemConfig{})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
