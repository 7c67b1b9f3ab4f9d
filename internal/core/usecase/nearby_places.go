package usecase

import (
	"context"
	"sort"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// GetNearbyPlacesUseCase находит транспорт и школы вокруг адреса объекта.
// Грубый квадрат отбирает кандидатов, точное расстояние считается по
// той же аппроксимации и задает порядок выдачи.
type GetNearbyPlacesUseCase struct {
	properties port.PropertyStoragePort
	poi        port.PoiStoragePort
}

func NewGetNearbyPlacesUseCase(properties port.PropertyStoragePort, poi port.PoiStoragePort) *GetNearbyPlacesUseCase {
	return &GetNearbyPlacesUseCase{properties: properties, poi: poi}
}

func (uc *GetNearbyPlacesUseCase) Execute(ctx context.Context, propertyID uuid.UUID, radiusKm float64) (*domain.NearbyPlaces, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetNearbyPlaces",
		"property_id": propertyID.String(),
	})

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrNotFound
	}

	center := property.Address.Location
	area, err := domain.NewBoundingBox(center, radiusKm)
	if err != nil {
		return nil, err
	}

	stations, err := uc.poi.FindTransitInArea(ctx, area)
	if err != nil {
		ucLogger.Error("Failed to load transit stations", err, nil)
		return nil, err
	}
	schools, err := uc.poi.FindSchoolsInArea(ctx, area)
	if err != nil {
		ucLogger.Error("Failed to load schools", err, nil)
		return nil, err
	}

	places := &domain.NearbyPlaces{
		Transit: make([]domain.TransitDistance, 0, len(stations)),
		Schools: make([]domain.SchoolDistance, 0, len(schools)),
	}
	for _, station := range stations {
		places.Transit = append(places.Transit, domain.TransitDistance{
			Station:    station,
			DistanceKm: domain.DistanceKm(center, station.Location),
		})
	}
	for _, school := range schools {
		places.Schools = append(places.Schools, domain.SchoolDistance{
			School:     school,
			DistanceKm: domain.DistanceKm(center, school.Location),
		})
	}

	sort.Slice(places.Transit, func(i, j int) bool {
		return places.Transit[i].DistanceKm < places.Transit[j].DistanceKm
	})
	sort.Slice(places.Schools, func(i, j int) bool {
		return places.Schools[i].DistanceKm < places.Schools[j].DistanceKm
	})

	ucLogger.Debug("Nearby places computed", port.Fields{
		"transit_count": len(places.Transit),
		"school_count":  len(places.Schools),
	})
	return places, nil
}

// AddTransitStationUseCase — административное добавление остановки.
type AddTransitStationUseCase struct {
	poi port.PoiStoragePort
}

func NewAddTransitStationUseCase(poi port.PoiStoragePort) *AddTransitStationUseCase {
	return &AddTransitStationUseCase{poi: poi}
}

func (uc *AddTransitStationUseCase) Execute(ctx context.Context, actor *domain.Claims, station *domain.TransitStation) (*domain.TransitStation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	station.ID = uuid.New()
	if err := station.Validate(); err != nil {
		return nil, err
	}
	if err := uc.poi.SaveTransitStation(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// AddSchoolUseCase — административное добавление школы.
type AddSchoolUseCase struct {
	poi port.PoiStoragePort
}

func NewAddSchoolUseCase(poi port.PoiStoragePort) *AddSchoolUseCase {
	return &AddSchoolUseCase{poi: poi}
}

func (uc *AddSchoolUseCase) Execute(ctx context.Context, actor *domain.Claims, school *domain.School) (*domain.School, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	school.ID = uuid.New()
	if err := school.Validate(); err != nil {
		return nil, err
	}
	if err := uc.poi.SaveSchool(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}
