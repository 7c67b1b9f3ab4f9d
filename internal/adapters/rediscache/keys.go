package rediscache

import (
	"fmt"
	"strings"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
)

// Точность геохэша для ключей кэша: ~0.6 км на ячейку. Близкие центры
// поиска попадают в один ключ, частота промахов падает.
const geoKeyPrecision = 6

// KeyBuilder - единственное место, где строятся ключи кэша.
// Вся схема собрана здесь, чтобы запись не могла забыть вариант ключа:
// точечные ключи (карточки, конфиг, контент) сбрасываются по точному
// имени, а страницы списков живут только на коротком TTL.
type KeyBuilder struct{}

func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{}
}

// geoScope кодирует центр и радиус в стабильную строку.
func geoScope(center domain.Coordinate, radiusKm float64) string {
	return fmt.Sprintf("%s:%.1f", geohash.EncodeWithPrecision(center.Lat, center.Lon, geoKeyPrecision), radiusKm)
}

func (k *KeyBuilder) ListingDetail(listingID uuid.UUID) string {
	return "listing:detail:" + listingID.String()
}

func (k *KeyBuilder) ListingsList(filters domain.ListingFilters, page domain.Pagination) string {
	var sb strings.Builder
	sb.WriteString("listing:list:")
	sb.WriteString(filters.ListingType)
	if filters.PriceMin != nil {
		fmt.Fprintf(&sb, ":pmin=%.2f", *filters.PriceMin)
	}
	if filters.PriceMax != nil {
		fmt.Fprintf(&sb, ":pmax=%.2f", *filters.PriceMax)
	}
	if filters.BedroomsMin != nil {
		fmt.Fprintf(&sb, ":bed=%d", *filters.BedroomsMin)
	}
	if filters.BathroomsMin != nil {
		fmt.Fprintf(&sb, ":bath=%.1f", *filters.BathroomsMin)
	}
	if filters.OnlyActive {
		sb.WriteString(":active")
	}
	if filters.PropertyID != nil {
		sb.WriteString(":prop=" + filters.PropertyID.String())
	}
	if filters.UserID != nil {
		sb.WriteString(":user=" + filters.UserID.String())
	}
	if filters.Area != nil {
		center := domain.Coordinate{
			Lat: (filters.Area.MinLat + filters.Area.MaxLat) / 2,
			Lon: (filters.Area.MinLon + filters.Area.MaxLon) / 2,
		}
		radius := (filters.Area.MaxLat - filters.Area.MinLat) / 2 * domain.KmPerDegree
		sb.WriteString(":geo=" + geoScope(center, radius))
	}
	fmt.Fprintf(&sb, ":page=%d:per=%d", page.Page, page.PerPage)
	return sb.String()
}

func (k *KeyBuilder) PropertyDetail(propertyID uuid.UUID) string {
	return "property:detail:" + propertyID.String()
}

func (k *KeyBuilder) MapView(center domain.Coordinate, radiusKm float64) string {
	return "map:view:" + geoScope(center, radiusKm)
}

func (k *KeyBuilder) MapClusters() string {
	return "map:clusters"
}

func (k *KeyBuilder) NearbyUsers(center domain.Coordinate, radiusKm float64) string {
	return "users:nearby:" + geoScope(center, radiusKm)
}

func (k *KeyBuilder) ActiveConfig() string {
	return "config:active"
}

func (k *KeyBuilder) FAQList(category string) string {
	if category == "" {
		category = "all"
	}
	return "content:faq:" + category
}

func (k *KeyBuilder) LegalDocuments() string {
	return "content:legal"
}

func (k *KeyBuilder) Announcements(audience string) string {
	if audience == "" {
		audience = "all"
	}
	return "content:announcements:" + audience
}

// UserKeys перечисляет точечные ключи, устаревающие после записи
// пользователя. Гео-ключи nearby живут на TTL: их варианты по центру
// и радиусу не перечислимы.
func (k *KeyBuilder) UserKeys(userID uuid.UUID) []string {
	return []string{
		"user:detail:" + userID.String(),
		"user:prefs:" + userID.String(),
	}
}

// ListingKeys - ключи, устаревающие после записи объявления.
// Страницы списков не перечисляются и истекают по TTL.
func (k *KeyBuilder) ListingKeys(listingID, propertyID uuid.UUID) []string {
	keys := []string{
		k.ListingDetail(listingID),
		k.PropertyDetail(propertyID),
	}
	return append(keys, k.MapKeys()...)
}

func (k *KeyBuilder) PropertyKeys(propertyID uuid.UUID) []string {
	return append([]string{k.PropertyDetail(propertyID)}, k.MapKeys()...)
}

// MapKeys - ключи карты; пространственные варианты map:view живут на TTL,
// здесь сбрасывается агрегат кластеров.
func (k *KeyBuilder) MapKeys() []string {
	return []string{k.MapClusters()}
}

func (k *KeyBuilder) ContentKeys() []string {
	return []string{
		k.FAQList(""),
		k.LegalDocuments(),
		k.Announcements(""),
	}
}
