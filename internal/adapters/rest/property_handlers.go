package rest

import (
	"encoding/json"
	"net/http"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	createPropertyUC    usecases_port.CreatePropertyUseCase
	getPropertyUC       usecases_port.GetPropertyUseCase
	updatePropertyUC    usecases_port.UpdatePropertyUseCase
	deletePropertyUC    usecases_port.DeletePropertyUseCase
	findPropertiesUC    usecases_port.FindPropertiesUseCase
	nearbyPlacesUC      usecases_port.GetNearbyPlacesUseCase
	addTransitStationUC usecases_port.AddTransitStationUseCase
	addSchoolUC         usecases_port.AddSchoolUseCase
}

func NewPropertyHandler(
	createPropertyUC usecases_port.CreatePropertyUseCase,
	getPropertyUC usecases_port.GetPropertyUseCase,
	updatePropertyUC usecases_port.UpdatePropertyUseCase,
	deletePropertyUC usecases_port.DeletePropertyUseCase,
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	nearbyPlacesUC usecases_port.GetNearbyPlacesUseCase,
	addTransitStationUC usecases_port.AddTransitStationUseCase,
	addSchoolUC usecases_port.AddSchoolUseCase,
) *PropertyHandler {
	return &PropertyHandler{
		createPropertyUC:    createPropertyUC,
		getPropertyUC:       getPropertyUC,
		updatePropertyUC:    updatePropertyUC,
		deletePropertyUC:    deletePropertyUC,
		findPropertiesUC:    findPropertiesUC,
		nearbyPlacesUC:      nearbyPlacesUC,
		addTransitStationUC: addTransitStationUC,
		addSchoolUC:         addSchoolUC,
	}
}

func propertyFromRequest(req PropertyRequest) *domain.Property {
	return &domain.Property{
		PropertyType: req.PropertyType,
		Status:       req.Status,
		Address: domain.Address{
			Street:       req.Address.Street,
			City:         req.Address.City,
			State:        req.Address.State,
			PostalCode:   req.Address.PostalCode,
			Country:      req.Address.Country,
			Neighborhood: req.Address.Neighborhood,
			Location:     domain.Coordinate{Lat: req.Address.Latitude, Lon: req.Address.Longitude},
		},
		YearBuilt:   req.YearBuilt,
		LotSizeSqft: req.LotSizeSqft,
		UnitNumber:  req.UnitNumber,
		FloorNumber: req.FloorNumber,
	}
}

// CreateProperty обрабатывает POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createPropertyUC.Execute(r.Context(), claims, propertyFromRequest(req))
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(created))
}

// GetProperty обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.getPropertyUC.Execute(r.Context(), propertyID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(property))
}

// UpdateProperty обрабатывает PUT /api/v1/properties/{propertyID}
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property := propertyFromRequest(req)
	property.ID = propertyID

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.updatePropertyUC.Execute(r.Context(), claims, property)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(updated))
}

// DeleteProperty обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.deletePropertyUC.Execute(r.Context(), claims, propertyID); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := ParsePagination(r)

	filters := domain.PropertyFilters{
		PropertyType: query.Get("propertyType"),
		City:         query.Get("city"),
	}
	if s := query.Get("ownerID"); s != "" {
		ownerID, err := uuid.Parse(s)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid owner id")
			return
		}
		filters.OwnerID = &ownerID
	}
	if center, ok := parseCoordinate(query, "latitude", "longitude"); ok {
		radiusKm := 10.0
		if v := parseFloat(query, "radiusKm"); v != nil {
			radiusKm = *v
		}
		box, err := domain.NewBoundingBox(center, radiusKm)
		if err != nil {
			HandleError(w, err)
			return
		}
		filters.Area = &box
	}

	properties, total, err := h.findPropertiesUC.Execute(r.Context(), filters, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	items := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, toPropertyResponse(&properties[i]))
	}
	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		TotalCount: total,
		Page:       page.Page,
		PerPage:    page.PerPage,
	})
}

// NearbyPlaces обрабатывает GET /api/v1/properties/{propertyID}/nearby-places
func (h *PropertyHandler) NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	radiusKm := 2.0
	if v := parseFloat(r.URL.Query(), "radiusKm"); v != nil {
		radiusKm = *v
	}

	places, err := h.nearbyPlacesUC.Execute(r.Context(), propertyID, radiusKm)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNearbyPlacesResponse(places))
}

// CreateTransitStation обрабатывает POST /api/v1/admin/transit-stations
func (h *PropertyHandler) CreateTransitStation(w http.ResponseWriter, r *http.Request) {
	var req TransitStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	station := &domain.TransitStation{
		Name:        req.Name,
		TransitType: req.TransitType,
		Location:    domain.Coordinate{Lat: req.Location.Latitude, Lon: req.Location.Longitude},
		Operator:    req.Operator,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.addTransitStationUC.Execute(r.Context(), claims, station)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toTransitStationResponse(created))
}

// CreateSchool обрабатывает POST /api/v1/admin/schools
func (h *PropertyHandler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req SchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	school := &domain.School{
		Name:         req.Name,
		SchoolType:   req.SchoolType,
		Location:     domain.Coordinate{Lat: req.Location.Latitude, Lon: req.Location.Longitude},
		Rating:       req.Rating,
		StudentCount: req.StudentCount,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.addSchoolUC.Execute(r.Context(), claims, school)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toSchoolResponse(created))
}
