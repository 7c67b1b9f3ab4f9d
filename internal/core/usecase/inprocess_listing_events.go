package usecase

import (
	"context"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
)

// InProcessListingEventPublisher — замена брокера, когда RabbitMQ не
// сконфигурирован: вместо публикации события затронутые кластеры
// пересчитываются синхронно, в том же запросе. Ошибки пересчета не
// прерывают запись объявления, агрегаты справочные.
type InProcessListingEventPublisher struct {
	refreshClusters *RefreshMapClustersUseCase
}

func NewInProcessListingEventPublisher(refreshClusters *RefreshMapClustersUseCase) *InProcessListingEventPublisher {
	return &InProcessListingEventPublisher{refreshClusters: refreshClusters}
}

func (p *InProcessListingEventPublisher) PublishListingEvent(ctx context.Context, event domain.ListingEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)

	point := domain.Coordinate{Lat: event.Latitude, Lon: event.Longitude}
	refreshed, err := p.refreshClusters.Execute(ctx, &point)
	if err != nil {
		logger.Warn("In-process cluster refresh failed", port.Fields{
			"event_type": event.EventType,
			"listing_id": event.ListingID.String(),
			"error":      err.Error(),
		})
		return err
	}

	logger.Debug("Listing event handled in-process", port.Fields{
		"event_type":         event.EventType,
		"clusters_refreshed": refreshed,
	})
	return nil
}
