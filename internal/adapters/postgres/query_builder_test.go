package postgres_adapter

import (
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyListingFiltersEmpty(t *testing.T) {
	_, where, args := applyListingFilters(domain.ListingFilters{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestApplyListingFilters(t *testing.T) {
	priceMin := 100000.0
	priceMax := 500000.0
	bedrooms := 2
	propertyID := uuid.New()

	_, where, args := applyListingFilters(domain.ListingFilters{
		ListingType: domain.ListingSale,
		PriceMin:    &priceMin,
		PriceMax:    &priceMax,
		BedroomsMin: &bedrooms,
		OnlyActive:  true,
		PropertyID:  &propertyID,
	})

	assert.Contains(t, where, "l.is_active = true")
	assert.Contains(t, where, "l.listing_type = $1")
	assert.Contains(t, where, "l.property_id = $2")
	assert.Contains(t, where, "l.price >= $3")
	assert.Contains(t, where, "l.price <= $4")
	assert.Contains(t, where, "l.bedrooms >= $5")
	// Условие без аргумента не сдвигает нумерацию плейсхолдеров.
	require.Len(t, args, 5)
	assert.Equal(t, domain.ListingSale, args[0])
	assert.Equal(t, propertyID, args[1])
}

func TestApplyListingFiltersArea(t *testing.T) {
	area, err := domain.NewBoundingBox(domain.Coordinate{Lat: 40.7128, Lon: -74.0060}, 5)
	require.NoError(t, err)

	_, where, args := applyListingFilters(domain.ListingFilters{Area: &area})

	assert.Contains(t, where, "l.latitude >= $1")
	assert.Contains(t, where, "l.latitude <= $2")
	assert.Contains(t, where, "l.longitude >= $3")
	assert.Contains(t, where, "l.longitude <= $4")
	require.Len(t, args, 4)
	assert.Equal(t, area.MinLat, args[0])
	assert.Equal(t, area.MaxLon, args[3])
}

func TestApplyPropertyFilters(t *testing.T) {
	ownerID := uuid.New()

	join, where, args := applyPropertyFilters(domain.PropertyFilters{
		PropertyType: "condo",
		City:         "Minsk",
		OwnerID:      &ownerID,
	})

	assert.Contains(t, join, "JOIN addresses a ON p.address_id = a.id")
	assert.Contains(t, where, "p.property_type = $1")
	assert.Contains(t, where, "a.city ILIKE $2")
	assert.Contains(t, where, "p.owner_id = $3")
	require.Len(t, args, 3)
}
