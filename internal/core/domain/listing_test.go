package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateDaysOnMarket(t *testing.T) {
	listed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	contract := listed.AddDate(0, 0, 45)

	l := Listing{ListedDate: listed, ContractDate: &contract}
	l.RecalculateDaysOnMarket()
	require.NotNil(t, l.DaysOnMarket)
	assert.Equal(t, 45, *l.DaysOnMarket)

	// Без даты контракта производное поле сбрасывается.
	l.ContractDate = nil
	l.RecalculateDaysOnMarket()
	assert.Nil(t, l.DaysOnMarket)
}

func TestListingValidate(t *testing.T) {
	valid := Listing{
		PropertyID:  uuid.New(),
		UserID:      uuid.New(),
		ListingType: ListingSale,
		Price:       250000,
		Bedrooms:    3,
		Bathrooms:   2,
		Location:    Coordinate{Lat: 40.7128, Lon: -74.0060},
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.ListingType = "barter"
	bad.Price = -1
	bad.Location = Coordinate{Lat: 200, Lon: 0}

	err := bad.Validate()
	require.Error(t, err)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "listing_type")
	assert.Contains(t, vErr.FieldErrors, "price")
	assert.Contains(t, vErr.FieldErrors, "location")
}

func TestNewPriceHistory(t *testing.T) {
	ph := NewPriceHistory(uuid.New(), 200000, 180000)
	assert.InDelta(t, -10, ph.ChangePercentage, 0.001)

	// Старой цены не было — процент не определен, остается нулевым.
	ph = NewPriceHistory(uuid.New(), 0, 100000)
	assert.Equal(t, 0.0, ph.ChangePercentage)
}

func TestOpenHouseRSVP(t *testing.T) {
	max := 2
	oh := OpenHouse{RegistrationRequired: true, MaxAttendees: &max}

	require.NoError(t, oh.RSVP())
	require.NoError(t, oh.RSVP())
	assert.Equal(t, 2, oh.AttendeesCount)

	// Лимит заполнен, запись отклоняется.
	err := oh.RSVP()
	require.Error(t, err)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, 2, oh.AttendeesCount)
}

func TestOpenHouseRSVPWithoutRegistration(t *testing.T) {
	oh := OpenHouse{RegistrationRequired: false}

	require.NoError(t, oh.RSVP())
	assert.Equal(t, 0, oh.AttendeesCount)
}
