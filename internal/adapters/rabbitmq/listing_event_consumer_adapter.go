package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
	usecases_port "marketplace-service/internal/core/port/usecases_port"
	"marketplace-service/pkg/rabbitmq/rabbitmq_common"
	"marketplace-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventConsumerAdapter - входящий адаптер, который слушает очередь
// событий объявлений и пересчитывает кластеры карты, накрывающие точку
// измененного объявления.
type ListingEventConsumerAdapter struct {
	consumer  rabbitmq_consumer.Consumer
	useCase   usecases_port.RefreshMapClustersUseCase
	validator port.ContractValidatorPort
	logger    port.LoggerPort
}

func NewListingEventConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.RefreshMapClustersUseCase,
	validator port.ContractValidatorPort,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*ListingEventConsumerAdapter, error) {

	adapter := &ListingEventConsumerAdapter{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}

	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewConsumer(consumerCfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for listing events: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

func (a *ListingEventConsumerAdapter) messageHandler(d amqp.Delivery) error {
	traceID, _ := d.Headers["x-trace-id"].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"adapter_name": "ListingEventConsumerAdapter",
		"routing_key":  d.RoutingKey,
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	// Валидация по схеме контракта
	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)
	if err := a.validator.Validate(eventType, eventVersion, d.Body); err != nil {
		msgLogger.Error("Message failed schema validation. Rejecting.", err, nil)
		return err
	}

	var event domain.ListingEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal listing event: %w", err)
	}

	point := domain.Coordinate{Lat: event.Latitude, Lon: event.Longitude}

	msgLogger.Info("Received listing event, refreshing affected clusters.", port.Fields{
		"event_type": event.EventType,
		"listing_id": event.ListingID.String(),
	})

	refreshed, err := a.useCase.Execute(ctx, &point)
	if err != nil {
		msgLogger.Error("Cluster refresh failed, message will be requeued.", err, nil)
		return err
	}

	msgLogger.Info("Clusters refreshed.", port.Fields{"refreshed_count": refreshed})
	return nil
}

// Start запускает прослушивание очереди.
func (a *ListingEventConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

// Close корректно останавливает консьюмера.
func (a *ListingEventConsumerAdapter) Close() error {
	return a.consumer.Close()
}
