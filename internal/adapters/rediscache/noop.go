package rediscache

import (
	"context"
	"time"
)

// NoopCache - заглушка кэша для окружений без Redis.
// Любое чтение - промах, запись и удаление - no-op.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}
