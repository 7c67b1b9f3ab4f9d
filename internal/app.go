package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	jwt_adapter "marketplace-service/internal/adapters/jwt"
	logger_adapter "marketplace-service/internal/adapters/logger"
	postgres_adapter "marketplace-service/internal/adapters/postgres"
	rabbitmq_adapter "marketplace-service/internal/adapters/rabbitmq"
	"marketplace-service/internal/adapters/rediscache"
	"marketplace-service/internal/adapters/rest"
	"marketplace-service/internal/configs"
	"marketplace-service/internal/constants"
	"marketplace-service/internal/contracts"
	"marketplace-service/internal/core/port"
	"marketplace-service/internal/core/usecase"
	"marketplace-service/pkg/fluentlogger"
	"marketplace-service/pkg/postgres"
	"marketplace-service/pkg/rabbitmq/rabbitmq_common"
	"marketplace-service/pkg/rabbitmq/rabbitmq_consumer"
	"marketplace-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	listingEventsListener port.EventListenerPort
	listingEventsProducer *rabbitmq_producer.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	// Кэш: Redis опционален, без него все чтения идут в хранилище.
	var cache port.CachePort
	if appConfig.Redis.Enabled {
		cacheAdapter, err := rediscache.NewCacheAdapter(context.Background(), rediscache.Config{
			Addr:     appConfig.Redis.Addr,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
			Prefix:   appConfig.AppName,
		})
		if err != nil {
			appLogger.Error("Failed to connect to Redis", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		cache = cacheAdapter
		appLogger.Info("Redis cache initialized.", nil)
	} else {
		cache = rediscache.NewNoopCache()
		appLogger.Warn("REDIS_ADDR is not set, cache memoization is disabled", nil)
	}
	cacheKeys := rediscache.NewKeyBuilder()

	tokenService, err := jwt_adapter.NewTokenService(appConfig.Auth.JWTSecret)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	contractValidator := contracts.NewValidator()

	// --- 3. АДАПТЕРЫ ХРАНИЛИЩА ---
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	propertyStorage, err := postgres_adapter.NewPropertyStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property storage adapter: %w", err)
	}
	listingStorage, err := postgres_adapter.NewListingStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing storage adapter: %w", err)
	}
	poiStorage, err := postgres_adapter.NewPoiStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create poi storage adapter: %w", err)
	}
	openHouseStorage, err := postgres_adapter.NewOpenHouseStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create open house storage adapter: %w", err)
	}
	clusterStorage, err := postgres_adapter.NewClusterStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create cluster storage adapter: %w", err)
	}
	campaignRepository, err := postgres_adapter.NewCampaignRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create campaign repository: %w", err)
	}
	adRequestRepository, err := postgres_adapter.NewAdRequestRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create ad request repository: %w", err)
	}
	bannerRepository, err := postgres_adapter.NewBannerRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create banner repository: %w", err)
	}
	transactionRepository, err := postgres_adapter.NewTransactionRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create transaction repository: %w", err)
	}
	messageRepository, err := postgres_adapter.NewMessageRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}
	ticketRepository, err := postgres_adapter.NewSupportTicketRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create support ticket repository: %w", err)
	}
	feedbackRepository, err := postgres_adapter.NewFeedbackRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create feedback repository: %w", err)
	}
	configRepository, err := postgres_adapter.NewSystemConfigRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create system config repository: %w", err)
	}
	announcementRepository, err := postgres_adapter.NewAnnouncementRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create announcement repository: %w", err)
	}
	contactRepository, err := postgres_adapter.NewContactRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	faqRepository, err := postgres_adapter.NewFAQRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create faq repository: %w", err)
	}
	legalDocRepository, err := postgres_adapter.NewLegalDocumentRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create legal document repository: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	// --- 4. RABBITMQ (опционально) ---
	// Пересчет кластеров нужен обоим путям доставки событий: консьюмеру
	// брокера и синхронному in-process варианту.
	refreshMapClustersUC := usecase.NewRefreshMapClustersUseCase(clusterStorage, listingStorage, cache, cacheKeys)

	// Без брокера события объявлений обрабатываются синхронно в процессе:
	// запись объявления сразу пересчитывает затронутые кластеры.
	var (
		eventPublisher        port.ListingEventPublisherPort
		eventProducer         *rabbitmq_producer.Publisher
		listingEventsListener port.EventListenerPort
		connManager           *rabbitmq_common.ConnectionManager
	)
	if appConfig.RabbitMQ.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManager, err = rabbitmq_common.NewManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producerCfg := rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.ListingEventsExchange,
			ExchangeType:             "topic",
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}
		eventProducer, err = rabbitmq_producer.NewPublisher(producerCfg, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}

		eventPublisher, err = rabbitmq_adapter.NewListingEventPublisherAdapter(eventProducer, contractValidator)
		if err != nil {
			appLogger.Error("Failed to create listing event publisher", err, nil)
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)
	} else {
		eventPublisher = usecase.NewInProcessListingEventPublisher(refreshMapClustersUC)
		appLogger.Warn("RABBITMQ_URL is not set, listing events are handled in-process", nil)
	}

	// --- 5. USE CASES ---
	registerUserUC := usecase.NewRegisterUserUseCase(userRepository, tokenService, appConfig.Auth.AccessTokenTTL)
	loginUserUC := usecase.NewLoginUserUseCase(userRepository, tokenService, appConfig.Auth.AccessTokenTTL)
	validateTokenUC := usecase.NewValidateTokenUseCase(tokenService)

	getUserUC := usecase.NewGetUserUseCase(userRepository)
	updateUserUC := usecase.NewUpdateUserUseCase(userRepository, cache, cacheKeys)
	deleteUserUC := usecase.NewDeleteUserUseCase(userRepository, cache, cacheKeys)
	findNearbyUsersUC := usecase.NewFindNearbyUsersUseCase(userRepository, cache, cacheKeys)
	getPrefsUC := usecase.NewGetSearchPreferencesUseCase(userRepository)
	updatePrefsUC := usecase.NewUpdateSearchPreferencesUseCase(userRepository, cache, cacheKeys)

	createPropertyUC := usecase.NewCreatePropertyUseCase(propertyStorage)
	getPropertyUC := usecase.NewGetPropertyUseCase(propertyStorage)
	updatePropertyUC := usecase.NewUpdatePropertyUseCase(propertyStorage, cache, cacheKeys)
	deletePropertyUC := usecase.NewDeletePropertyUseCase(propertyStorage, cache, cacheKeys)
	findPropertiesUC := usecase.NewFindPropertiesUseCase(propertyStorage)
	nearbyPlacesUC := usecase.NewGetNearbyPlacesUseCase(propertyStorage, poiStorage)
	addTransitStationUC := usecase.NewAddTransitStationUseCase(poiStorage)
	addSchoolUC := usecase.NewAddSchoolUseCase(poiStorage)

	createListingUC := usecase.NewCreateListingUseCase(listingStorage, propertyStorage, eventPublisher, cache, cacheKeys)
	updateListingUC := usecase.NewUpdateListingUseCase(listingStorage, eventPublisher, cache, cacheKeys)
	deactivateListingUC := usecase.NewDeactivateListingUseCase(listingStorage, eventPublisher, cache, cacheKeys)
	getListingDetailsUC := usecase.NewGetListingDetailsUseCase(listingStorage, cache, cacheKeys)
	findListingsUC := usecase.NewFindListingsUseCase(listingStorage, cache, cacheKeys)
	favoriteListingUC := usecase.NewFavoriteListingUseCase(listingStorage, propertyStorage)
	sendInquiryUC := usecase.NewSendInquiryUseCase(listingStorage, messageRepository)
	getPriceHistoryUC := usecase.NewGetPriceHistoryUseCase(listingStorage)
	createOpenHouseUC := usecase.NewCreateOpenHouseUseCase(openHouseStorage, listingStorage)
	listOpenHousesUC := usecase.NewListOpenHousesUseCase(openHouseStorage)
	rsvpOpenHouseUC := usecase.NewRsvpOpenHouseUseCase(openHouseStorage)

	getMapViewUC := usecase.NewGetMapViewUseCase(listingStorage, clusterStorage, cache, cacheKeys)
	getMapClustersUC := usecase.NewGetMapClustersUseCase(clusterStorage, cache, cacheKeys)

	createCampaignUC := usecase.NewCreateCampaignUseCase(campaignRepository, contractValidator)
	getCampaignUC := usecase.NewGetCampaignUseCase(campaignRepository)
	updateCampaignUC := usecase.NewUpdateCampaignUseCase(campaignRepository, contractValidator)
	deleteCampaignUC := usecase.NewDeleteCampaignUseCase(campaignRepository)
	listCampaignsUC := usecase.NewListCampaignsUseCase(campaignRepository)
	createAdRequestUC := usecase.NewCreateAdRequestUseCase(adRequestRepository, campaignRepository)
	listAdRequestsUC := usecase.NewListAdRequestsUseCase(adRequestRepository)
	resolveAdRequestUC := usecase.NewResolveAdRequestUseCase(adRequestRepository)
	createBannerUC := usecase.NewCreateBannerUseCase(bannerRepository, campaignRepository)
	listBannersUC := usecase.NewListBannersUseCase(bannerRepository, campaignRepository)
	createTransactionUC := usecase.NewCreateTransactionUseCase(transactionRepository, listingStorage)
	listTransactionsUC := usecase.NewListTransactionsUseCase(transactionRepository)

	sendMessageUC := usecase.NewSendMessageUseCase(messageRepository, userRepository)
	getMessageUC := usecase.NewGetMessageUseCase(messageRepository)
	listMessagesUC := usecase.NewListMessagesUseCase(messageRepository)
	markMessageReadUC := usecase.NewMarkMessageReadUseCase(messageRepository)
	createTicketUC := usecase.NewCreateTicketUseCase(ticketRepository)
	updateTicketUC := usecase.NewUpdateTicketUseCase(ticketRepository)
	listTicketsUC := usecase.NewListTicketsUseCase(ticketRepository)
	createFeedbackUC := usecase.NewCreateFeedbackUseCase(feedbackRepository)
	listFeedbackUC := usecase.NewListFeedbackUseCase(feedbackRepository)

	saveConfigUC := usecase.NewSaveSystemConfigUseCase(configRepository, cache, cacheKeys)
	getActiveConfigUC := usecase.NewGetActiveConfigUseCase(configRepository, cache, cacheKeys)
	listConfigsUC := usecase.NewListSystemConfigsUseCase(configRepository)
	saveAnnouncementUC := usecase.NewSaveAnnouncementUseCase(announcementRepository, cache, cacheKeys)
	listAnnouncementsUC := usecase.NewListAnnouncementsUseCase(announcementRepository, cache, cacheKeys)
	submitContactUC := usecase.NewSubmitContactUseCase(contactRepository)
	listContactsUC := usecase.NewListContactsUseCase(contactRepository)
	saveFAQUC := usecase.NewSaveFAQUseCase(faqRepository, cache, cacheKeys)
	listFAQsUC := usecase.NewListFAQsUseCase(faqRepository, cache, cacheKeys)
	voteFAQUC := usecase.NewVoteFAQUseCase(faqRepository)
	saveLegalDocUC := usecase.NewSaveLegalDocumentUseCase(legalDocRepository, cache, cacheKeys)
	listLegalDocsUC := usecase.NewListLegalDocumentsUseCase(legalDocRepository, cache, cacheKeys)

	appLogger.Info("All use cases initialized.", nil)

	// --- 6. ВХОДЯЩИЕ АДАПТЕРЫ ---
	if appConfig.RabbitMQ.Enabled {
		consumerCfg := rabbitmq_consumer.ConsumerConfig{
			Config:                 rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			QueueName:              constants.QueueClusterRefresh,
			DeclareQueue:           true,
			DurableQueue:           true,
			ExchangeNameForBind:    constants.ListingEventsExchange,
			DeclareExchangeForBind: true,
			ExchangeTypeForBind:    "topic",
			DurableExchangeForBind: true,
			RoutingKeyForBind:      constants.RoutingKeyListingAll,
			PrefetchCount:          1,
			ConsumerTag:            "map-cluster-refresher",
		}
		listingEventsListener, err = rabbitmq_adapter.NewListingEventConsumerAdapter(consumerCfg, refreshMapClustersUC, contractValidator, baseLogger, connManager)
		if err != nil {
			appLogger.Error("Failed to create listing events listener", err, nil)
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("Listing Events Listener initialized.", nil)
	}

	// REST API Server
	authMiddleware := rest.NewAuthMiddleware(validateTokenUC)
	authHandler := rest.NewAuthHandler(registerUserUC, loginUserUC)
	userHandler := rest.NewUserHandler(getUserUC, updateUserUC, deleteUserUC, findNearbyUsersUC, getPrefsUC, updatePrefsUC)
	propertyHandler := rest.NewPropertyHandler(createPropertyUC, getPropertyUC, updatePropertyUC, deletePropertyUC,
		findPropertiesUC, nearbyPlacesUC, addTransitStationUC, addSchoolUC)
	listingHandler := rest.NewListingHandler(createListingUC, updateListingUC, deactivateListingUC, getListingDetailsUC,
		findListingsUC, favoriteListingUC, sendInquiryUC, getPriceHistoryUC, createOpenHouseUC, listOpenHousesUC, rsvpOpenHouseUC)
	mapHandler := rest.NewMapHandler(getMapViewUC, getMapClustersUC, refreshMapClustersUC)
	campaignHandler := rest.NewCampaignHandler(createCampaignUC, getCampaignUC, updateCampaignUC, deleteCampaignUC,
		listCampaignsUC, createAdRequestUC, listAdRequestsUC, resolveAdRequestUC,
		createBannerUC, listBannersUC, createTransactionUC, listTransactionsUC)
	messageHandler := rest.NewMessageHandler(sendMessageUC, getMessageUC, listMessagesUC, markMessageReadUC,
		createTicketUC, updateTicketUC, listTicketsUC, createFeedbackUC, listFeedbackUC)
	contentHandler := rest.NewContentHandler(saveConfigUC, getActiveConfigUC, listConfigsUC, saveAnnouncementUC,
		listAnnouncementsUC, submitContactUC, listContactsUC, saveFAQUC, listFAQsUC, voteFAQUC, saveLegalDocUC, listLegalDocsUC)

	apiServer := rest.NewServer(appConfig.Rest.Port, appConfig.Rest.AllowedOrigins, authMiddleware,
		authHandler, userHandler, propertyHandler, listingHandler, mapHandler, campaignHandler, messageHandler, contentHandler,
		baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:                appConfig,
		dbPool:                dbPool,
		apiServer:             apiServer,
		listingEventsListener: listingEventsListener,
		listingEventsProducer: eventProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.listingEventsListener != nil {
			if err := a.listingEventsListener.Close(); err != nil {
				a.logger.Error("Error closing listing events listener", err, nil)
			}
		}

		if a.listingEventsProducer != nil {
			if err := a.listingEventsProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout: fluent к этому моменту может быть недоступен.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	if a.listingEventsListener != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(port.Fields{"listener_name": "Listing Events Listener"})
			listenerLogger.Info("Starting listener...", nil)

			if err := a.listingEventsListener.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("listing events listener error: %w", err)
			} else {
				listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
			}
		}()
	}

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
