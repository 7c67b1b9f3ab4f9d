package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-service/internal/constants"
	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
	"marketplace-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventPublisherAdapter публикует события объявлений в обменник
// listing.events. Payload перед отправкой сверяется со схемой контракта,
// чтобы невалидное событие не ушло потребителям.
type ListingEventPublisherAdapter struct {
	producer  *rabbitmq_producer.Publisher
	validator port.ContractValidatorPort
}

func NewListingEventPublisherAdapter(producer *rabbitmq_producer.Publisher, validator port.ContractValidatorPort) (*ListingEventPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if validator == nil {
		return nil, fmt.Errorf("rabbitmq adapter: validator cannot be nil")
	}
	return &ListingEventPublisherAdapter{
		producer:  producer,
		validator: validator,
	}, nil
}

func (a *ListingEventPublisherAdapter) PublishListingEvent(ctx context.Context, event domain.ListingEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ListingEventPublisherAdapter",
		"event_type":  event.EventType,
		"listing_id":  event.ListingID.String(),
		"routing_key": event.EventType,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal listing event: %w", err)
	}

	if err := a.validator.Validate(constants.ContractListingEvent, constants.ContractListingEventVersion, body); err != nil {
		adapterLogger.Error("Listing event failed contract validation, not publishing", err, nil)
		return fmt.Errorf("rabbitmq adapter: listing event failed contract validation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    constants.ContractListingEvent,
			"event-version": constants.ContractListingEventVersion,
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на публикацию, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, event.EventType, msg); err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish listing event: %w", err)
	}

	adapterLogger.Debug("Listing event published.", nil)
	return nil
}
