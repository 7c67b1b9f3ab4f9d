package constants

// Обменник событий объявлений
const (
	ListingEventsExchange = "listing.events"
)

// Ключи маршрутизации (совпадают с типами событий)
const (
	RoutingKeyListingCreated     = "listing.created"
	RoutingKeyListingUpdated     = "listing.updated"
	RoutingKeyListingDeactivated = "listing.deactivated"

	// Привязка очереди пересчета кластеров ко всем событиям объявлений
	RoutingKeyListingAll = "listing.*"
)

// Имена очередей
const (
	QueueClusterRefresh = "map_cluster_refresh"
)

// Метаданные контрактов в заголовках сообщений
const (
	ContractListingEvent        = "ListingEvent"
	ContractListingEventVersion = "1.0.0"

	ContractCampaignTargeting        = "CampaignTargeting"
	ContractCampaignTargetingVersion = "1.0.0"
)
