package rediscache

import (
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNearbyCentersShareKey(t *testing.T) {
	k := NewKeyBuilder()

	// Центры в сотне метров друг от друга попадают в одну ячейку геохэша.
	a := k.NearbyUsers(domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, 5)
	b := k.NearbyUsers(domain.Coordinate{Lat: 40.7130, Lon: -74.0062}, 5)
	assert.Equal(t, a, b)

	// Другой радиус — другой ключ.
	c := k.NearbyUsers(domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, 10)
	assert.NotEqual(t, a, c)

	// Далекий центр — другой ключ.
	d := k.NearbyUsers(domain.Coordinate{Lat: 53.9006, Lon: 27.5590}, 5)
	assert.NotEqual(t, a, d)
}

func TestListingsListKeyIsDeterministic(t *testing.T) {
	k := NewKeyBuilder()
	priceMin := 100000.0
	filters := domain.ListingFilters{
		ListingType: domain.ListingRent,
		PriceMin:    &priceMin,
		OnlyActive:  true,
	}
	page := domain.Pagination{Page: 2, PerPage: 20}

	assert.Equal(t, k.ListingsList(filters, page), k.ListingsList(filters, page))
	assert.NotEqual(t, k.ListingsList(filters, page), k.ListingsList(filters, domain.Pagination{Page: 3, PerPage: 20}))
}

func TestListingKeysIncludeMapAggregate(t *testing.T) {
	k := NewKeyBuilder()
	listingID := uuid.New()
	propertyID := uuid.New()

	keys := k.ListingKeys(listingID, propertyID)
	assert.Contains(t, keys, k.ListingDetail(listingID))
	assert.Contains(t, keys, k.PropertyDetail(propertyID))
	assert.Contains(t, keys, k.MapClusters())
}

func TestContentKeyDefaults(t *testing.T) {
	k := NewKeyBuilder()

	assert.Equal(t, "content:faq:all", k.FAQList(""))
	assert.Equal(t, "content:faq:billing", k.FAQList("billing"))
	assert.Equal(t, "content:announcements:all", k.Announcements(""))
}
