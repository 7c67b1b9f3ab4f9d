package port

import (
	"context"

	"marketplace-service/internal/core/domain"
)

// ListingEventPublisherPort - публикация событий об изменениях объявлений.
// Публикация best-effort: недоступный брокер не должен ронять запись.
type ListingEventPublisherPort interface {
	PublishListingEvent(ctx context.Context, event domain.ListingEvent) error
}

// EventListenerPort - входящий слушатель брокера сообщений.
// Start блокируется до отмены контекста.
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
