package port

import (
	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// CacheKeysPort строит детерминированные ключи кэша и перечисляет
// группы ключей, которые запись обязана сбросить. Вся схема ключей
// собрана в одном месте, чтобы ни одна запись не забыла вариант ключа.
type CacheKeysPort interface {
	ListingDetail(listingID uuid.UUID) string
	ListingsList(filters domain.ListingFilters, page domain.Pagination) string
	PropertyDetail(propertyID uuid.UUID) string
	MapView(center domain.Coordinate, radiusKm float64) string
	MapClusters() string
	NearbyUsers(center domain.Coordinate, radiusKm float64) string
	ActiveConfig() string
	FAQList(category string) string
	LegalDocuments() string
	Announcements(audience string) string

	// Группы ключей для инвалидации после записи.
	UserKeys(userID uuid.UUID) []string
	ListingKeys(listingID, propertyID uuid.UUID) []string
	PropertyKeys(propertyID uuid.UUID) []string
	MapKeys() []string
	ContentKeys() []string
}
