package port

import (
	"context"
	"time"
)

// CachePort - контракт кэша для мемоизации ответов.
// Кэш всегда best-effort: промах или ошибка чтения означает поход
// в хранилище, корректность от кэша не зависит.
type CachePort interface {
	// Get возвращает (nil, nil) при промахе.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет перечисленные ключи. Каждая запись обязана сама
	// перечислить точные ключи, которые она могла сделать устаревшими.
	Delete(ctx context.Context, keys ...string) error
}
