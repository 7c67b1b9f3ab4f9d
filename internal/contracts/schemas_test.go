package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemasCompiled(t *testing.T) {
	require.Contains(t, compiledSchemas, "ListingEvent/1.0.0")
	require.Contains(t, compiledSchemas, "CampaignTargeting/1.0.0")
}

func TestValidateListingEvent(t *testing.T) {
	v := NewValidator()

	valid := []byte(`{
		"event_type": "listing.created",
		"listing_id": "7b7e2f0a-3f46-47bc-b4f8-0f6a4d7a2e11",
		"property_id": "a67c27a5-97a4-4e7e-bb04-56b2c2f0ff02",
		"latitude": 40.7128,
		"longitude": -74.006,
		"price": 250000,
		"occurred_at": "2026-08-01T12:00:00Z"
	}`)
	assert.NoError(t, v.Validate("ListingEvent", "1.0.0", valid))

	// Неизвестный тип события отклоняется схемой.
	badType := []byte(`{
		"event_type": "listing.archived",
		"listing_id": "7b7e2f0a-3f46-47bc-b4f8-0f6a4d7a2e11",
		"property_id": "a67c27a5-97a4-4e7e-bb04-56b2c2f0ff02",
		"latitude": 40.7128,
		"longitude": -74.006,
		"occurred_at": "2026-08-01T12:00:00Z"
	}`)
	assert.Error(t, v.Validate("ListingEvent", "1.0.0", badType))

	// Широта за пределами диапазона.
	badLat := []byte(`{
		"event_type": "listing.updated",
		"listing_id": "7b7e2f0a-3f46-47bc-b4f8-0f6a4d7a2e11",
		"property_id": "a67c27a5-97a4-4e7e-bb04-56b2c2f0ff02",
		"latitude": 120,
		"longitude": -74.006,
		"occurred_at": "2026-08-01T12:00:00Z"
	}`)
	assert.Error(t, v.Validate("ListingEvent", "1.0.0", badLat))

	assert.Error(t, v.Validate("ListingEvent", "1.0.0", []byte(`{}`)))
	assert.Error(t, v.Validate("ListingEvent", "1.0.0", []byte(`not json`)))
}

func TestValidateCampaignTargeting(t *testing.T) {
	v := NewValidator()

	valid := []byte(`{
		"locations": ["Minsk", "Grodno"],
		"listing_types": ["sale", "rent"],
		"price_min": 50000,
		"price_max": 300000,
		"audience": "buyers"
	}`)
	assert.NoError(t, v.Validate("CampaignTargeting", "1.0.0", valid))

	// Посторонние поля запрещены.
	extra := []byte(`{"unknown_rule": true}`)
	assert.Error(t, v.Validate("CampaignTargeting", "1.0.0", extra))

	badAudience := []byte(`{"audience": "aliens"}`)
	assert.Error(t, v.Validate("CampaignTargeting", "1.0.0", badAudience))
}

func TestValidateUnknownContract(t *testing.T) {
	v := NewValidator()
	assert.Error(t, v.Validate("Nonexistent", "1.0.0", []byte(`{}`)))
}
