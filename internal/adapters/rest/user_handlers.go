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

type UserHandler struct {
	getUserUC     usecases_port.GetUserUseCase
	updateUserUC  usecases_port.UpdateUserUseCase
	deleteUserUC  usecases_port.DeleteUserUseCase
	findNearbyUC  usecases_port.FindNearbyUsersUseCase
	getPrefsUC    usecases_port.GetSearchPreferencesUseCase
	updatePrefsUC usecases_port.UpdateSearchPreferencesUseCase
}

func NewUserHandler(
	getUserUC usecases_port.GetUserUseCase,
	updateUserUC usecases_port.UpdateUserUseCase,
	deleteUserUC usecases_port.DeleteUserUseCase,
	findNearbyUC usecases_port.FindNearbyUsersUseCase,
	getPrefsUC usecases_port.GetSearchPreferencesUseCase,
	updatePrefsUC usecases_port.UpdateSearchPreferencesUseCase,
) *UserHandler {
	return &UserHandler{
		getUserUC:     getUserUC,
		updateUserUC:  updateUserUC,
		deleteUserUC:  deleteUserUC,
		findNearbyUC:  findNearbyUC,
		getPrefsUC:    getPrefsUC,
		updatePrefsUC: updatePrefsUC,
	}
}

// GetUser обрабатывает GET /api/v1/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	user, err := h.getUserUC.Execute(r.Context(), claims, userID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser обрабатывает PUT /api/v1/users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "UpdateUser"})

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := &domain.User{
		ID:           userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PrivacyLevel: req.PrivacyLevel,
	}
	if req.Location != nil {
		user.Location = &domain.Coordinate{Lat: req.Location.Latitude, Lon: req.Location.Longitude}
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	updated, err := h.updateUserUC.Execute(r.Context(), claims, user)
	if err != nil {
		handlerLogger.Warn("user update rejected", port.Fields{"user_id": userID.String()})
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toUserResponse(updated))
}

// DeleteUser обрабатывает DELETE /api/v1/users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.deleteUserUC.Execute(r.Context(), claims, userID); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FindNearby обрабатывает GET /api/v1/users/nearby?latitude=..&longitude=..&radiusKm=..
func (h *UserHandler) FindNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	center, ok := parseCoordinate(query, "latitude", "longitude")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	radiusKm := 10.0
	if v := parseFloat(query, "radiusKm"); v != nil {
		radiusKm = *v
	}
	limit := 50
	if v := parseInt(query, "limit"); v != nil && *v > 0 && *v <= 200 {
		limit = *v
	}

	users, err := h.findNearbyUC.Execute(r.Context(), center, radiusKm, limit)
	if err != nil {
		HandleError(w, err)
		return
	}

	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	RespondWithJSON(w, http.StatusOK, result)
}

// GetPreferences обрабатывает GET /api/v1/users/{userID}/preferences
func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	prefs, err := h.getPrefsUC.Execute(r.Context(), claims, userID)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, prefs)
}

// UpdatePreferences обрабатывает PUT /api/v1/users/{userID}/preferences
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var prefs domain.SearchPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := contextkeys.ClaimsFromContext(r.Context())
	if err := h.updatePrefsUC.Execute(r.Context(), claims, userID, prefs); err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, prefs)
}
