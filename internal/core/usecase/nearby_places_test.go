package usecase

import (
	"context"
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNearbyPlacesSortedByDistance(t *testing.T) {
	center := domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
	property := domain.Property{
		ID:      uuid.New(),
		Address: domain.Address{City: "New York", Location: center},
	}
	properties := newFakePropertyStorage()
	require.NoError(t, properties.Save(context.Background(), &property))

	poi := &fakePoiStorage{
		stations: []domain.TransitStation{
			{ID: uuid.New(), Name: "Chambers St", TransitType: domain.TransitSubway,
				Location: domain.Coordinate{Lat: 40.7150, Lon: -74.0090}},
			{ID: uuid.New(), Name: "City Hall", TransitType: domain.TransitSubway,
				Location: domain.Coordinate{Lat: 40.7130, Lon: -74.0062}},
			// Далеко за пределами радиуса, в выдачу не попадает.
			{ID: uuid.New(), Name: "Coney Island", TransitType: domain.TransitSubway,
				Location: domain.Coordinate{Lat: 40.5755, Lon: -73.9707}},
		},
		schools: []domain.School{
			{ID: uuid.New(), Name: "PS 234", SchoolType: domain.SchoolElementary,
				Location: domain.Coordinate{Lat: 40.7170, Lon: -74.0110}},
			{ID: uuid.New(), Name: "Stuyvesant", SchoolType: domain.SchoolHigh,
				Location: domain.Coordinate{Lat: 40.7180, Lon: -74.0139}},
		},
	}

	uc := NewGetNearbyPlacesUseCase(properties, poi)
	places, err := uc.Execute(context.Background(), property.ID, 2.0)
	require.NoError(t, err)

	require.Len(t, places.Transit, 2)
	assert.Equal(t, "City Hall", places.Transit[0].Station.Name)
	assert.Equal(t, "Chambers St", places.Transit[1].Station.Name)
	assert.Less(t, places.Transit[0].DistanceKm, places.Transit[1].DistanceKm)

	require.Len(t, places.Schools, 2)
	assert.Equal(t, "PS 234", places.Schools[0].School.Name)
	assert.Less(t, places.Schools[0].DistanceKm, places.Schools[1].DistanceKm)
}

func TestGetNearbyPlacesUnknownProperty(t *testing.T) {
	uc := NewGetNearbyPlacesUseCase(newFakePropertyStorage(), &fakePoiStorage{})

	_, err := uc.Execute(context.Background(), uuid.New(), 2.0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddTransitStationAdminOnly(t *testing.T) {
	poi := &fakePoiStorage{}
	uc := NewAddTransitStationUseCase(poi)
	station := &domain.TransitStation{
		Name:        "Union Sq",
		TransitType: domain.TransitSubway,
		Location:    domain.Coordinate{Lat: 40.7359, Lon: -73.9911},
	}

	_, err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New(), Role: domain.RoleSeller}, station)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, poi.stations)

	admin := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}
	created, err := uc.Execute(context.Background(), admin, station)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, poi.stations, 1)
}

func TestAddSchoolValidatesRating(t *testing.T) {
	uc := NewAddSchoolUseCase(&fakePoiStorage{})
	admin := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}

	badRating := 11
	_, err := uc.Execute(context.Background(), admin, &domain.School{
		Name:       "PS 41",
		SchoolType: domain.SchoolElementary,
		Location:   domain.Coordinate{Lat: 40.7359, Lon: -73.9911},
		Rating:     &badRating,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldErrors, "rating")
}
