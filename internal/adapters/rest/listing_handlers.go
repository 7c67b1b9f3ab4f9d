package rest

import (
	"encoding/json"
	"net/http"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"
	"marketplace-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ListingHandler struct {
	createListingUC     usecases_port.CreateListingUseCase
	updateListingUC     usecases_port.UpdateListingUseCase
	deactivateListingUC usecases_port.DeactivateListingUseCase
	getDetailsUC        usecases_port.GetListingDetailsUseCase
	findListingsUC      usecases_port.FindListingsUseCase
	favoriteListingUC   usecases_port.FavoriteListingUseCase
	sendInquiryUC       usecases_port.SendInquiryUseCase
	getPriceHistoryUC   usecases_port.GetPriceHistoryUseCase
	createOpenHouseUC   usecases_port.CreateOpenHouseUseCase
	listOpenHousesUC    usecases_port.ListOpenHousesUseCase
	rsvpOpenHouseUC     usecases_port.RsvpOpenHouseUseCase
}

func NewListingHandler(
	createListingUC usecases_port.CreateListingUseCase,
	updateListingUC usecases_port.UpdateListingUseCase,
	deactivateListingUC usecases_port.DeactivateListingUseCase,
	getDetailsUC usecases_port.GetListingDetailsUseCase,
	findListingsUC usecases_port.FindListingsUseCase,
	favoriteListingUC usecases_port.FavoriteListingUseCase,
	sendInquiryUC usecases_port.SendInquiryUseCase,
	getPriceHistoryUC usecases_port.GetPriceHistoryUseCase,
	createOpenHouseUC usecases_port.CreateOpenHouseUseCase,
	listOpenHousesUC usecases_port.ListOpenHousesUseCase,
	rsvpOpenHouseUC usecases_port.RsvpOpenHouseUseCase,
) *ListingHandler {
	return &ListingHandler{
		createListingUC:     createListingUC,
		updateListingUC:     updateListingUC,
		deactivateListingUC: deactivateListingUC,
		getDetailsUC:        getDetailsUC,
		findListingsUC:      findListingsUC,
		favoriteListingUC:   favoriteListingUC,
		sendInquiryUC:       sendInquiryUC,
		getPriceHistoryUC:   getPriceHistoryUC,
		createOpenHouseUC:   createOpenHouseUC,
		listOpenHousesUC:    listOpenHousesUC,
		rsvpOpenHouseUC:     rsvpOpenHouseUC,
	}
}

func listingFromRequest(req ListingRequest) (*domain.Listing, error) {
	listing := &domain.Listing{
		ListingType:  req.ListingType,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		ListedDate:   req.ListedDate,
		ContractDate: req.ContractDate,
		ClosingDate:  req.ClosingDate,
	}
	if req.PropertyID != "" {
		propertyID, err := uuid.Parse(req.PropertyID)
		if err != nil {
			return nil, err
		}
		listing.PropertyID = propertyID
	}
	return listing, nil
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "CreateListing"})

	var req ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing, err := listingFromRequest(req)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createListingUC.Execute(r.Context(), claims, listing)
	if err != nil {
		handlerLogger.Warn("listing creation rejected", nil)
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toListingResponse(created))
}

// UpdateListing обрабатывает PUT /api/v1/listings/{listingID}
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	var req ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listing, err := listingFromRequest(req)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	listing.ID = listingID

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.updateListingUC.Execute(r.Context(), claims, listing)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(updated))
}

// DeactivateListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingHandler) DeactivateListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.deactivateListingUC.Execute(r.Context(), claims, listingID); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	listing, err := h.getDetailsUC.Execute(r.Context(), listingID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(listing))
}

// FindListings обрабатывает GET /api/v1/listings
func (h *ListingHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := ParsePagination(r)

	filters := domain.ListingFilters{
		ListingType:  query.Get("listingType"),
		PriceMin:     parseFloat(query, "priceMin"),
		PriceMax:     parseFloat(query, "priceMax"),
		BedroomsMin:  parseInt(query, "bedroomsMin"),
		BathroomsMin: parseFloat(query, "bathroomsMin"),
		OnlyActive:   query.Get("includeInactive") != "true",
	}
	if s := query.Get("propertyID"); s != "" {
		propertyID, err := uuid.Parse(s)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid property id")
			return
		}
		filters.PropertyID = &propertyID
	}
	if s := query.Get("userID"); s != "" {
		userID, err := uuid.Parse(s)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		filters.UserID = &userID
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

	result, err := h.findListingsUC.Execute(r.Context(), filters, page)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedResponse{
		Items:      toListingResponses(result.Listings),
		TotalCount: result.TotalCount,
		Page:       result.CurrentPage,
		PerPage:    result.ItemsPerPage,
	})
}

// FavoriteListing обрабатывает POST /api/v1/listings/{listingID}/favorite
func (h *ListingHandler) FavoriteListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.favoriteListingUC.Execute(r.Context(), claims, listingID); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendInquiry обрабатывает POST /api/v1/listings/{listingID}/inquiries
func (h *ListingHandler) SendInquiry(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.sendInquiryUC.Execute(r.Context(), claims, listingID, req.Body); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPriceHistory обрабатывает GET /api/v1/listings/{listingID}/price-history
func (h *ListingHandler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	history, err := h.getPriceHistoryUC.Execute(r.Context(), listingID)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]PriceHistoryResponse, 0, len(history))
	for _, ph := range history {
		result = append(result, PriceHistoryResponse{
			ID:               ph.ID.String(),
			OldPrice:         ph.OldPrice,
			NewPrice:         ph.NewPrice,
			ChangePercentage: ph.ChangePercentage,
			ChangedAt:        ph.ChangedAt,
		})
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// CreateOpenHouse обрабатывает POST /api/v1/listings/{listingID}/open-houses
func (h *ListingHandler) CreateOpenHouse(w http.ResponseWriter, r *http.Request) {
	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	var req OpenHouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	oh := &domain.OpenHouse{
		ListingID:            listingID,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		RegistrationRequired: req.RegistrationRequired,
		MaxAttendees:         req.MaxAttendees,
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	created, err := h.createOpenHouseUC.Execute(r.Context(), claims, oh)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toOpenHouseResponse(created))
}

// ListOpenHouses обрабатывает GET /api/v1/open-houses
func (h *ListingHandler) ListOpenHouses(w http.ResponseWriter, r *http.Request) {
	page := ParsePagination(r)

	openHouses, err := h.listOpenHousesUC.Execute(r.Context(), page)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]OpenHouseResponse, 0, len(openHouses))
	for i := range openHouses {
		result = append(result, toOpenHouseResponse(&openHouses[i]))
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// RsvpOpenHouse обрабатывает POST /api/v1/open-houses/{openHouseID}/rsvp
func (h *ListingHandler) RsvpOpenHouse(w http.ResponseWriter, r *http.Request) {
	openHouseID, err := uuid.Parse(chi.URLParam(r, "openHouseID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid open house id")
		return
	}

	oh, err := h.rsvpOpenHouseUC.Execute(r.Context(), openHouseID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toOpenHouseResponse(oh))
}
