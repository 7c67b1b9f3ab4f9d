package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"marketplace-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// HandleError транслирует доменные ошибки в HTTP-статусы.
// Ошибки валидации отдаются с картой ошибок по полям.
func HandleError(w http.ResponseWriter, err error) {
	if vErr, ok := domain.AsValidationError(err); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "validation failed",
			"fields": vErr.FieldErrors,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrTokenInvalid):
		WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrEmailInUse):
		WriteJSONError(w, http.StatusConflict, "email already in use")
	case errors.Is(err, domain.ErrInvalidCoordinates):
		WriteJSONError(w, http.StatusBadRequest, "invalid coordinates")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ParsePagination разбирает page/perPage. Дефолт 20 на страницу, максимум 100.
func ParsePagination(r *http.Request) domain.Pagination {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return domain.Pagination{Page: page, PerPage: perPage}
}

func parseFloat(query url.Values, key string) *float64 {
	s := query.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(query url.Values, key string) *int {
	s := query.Get(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseCoordinate разбирает пару lat/lon из query-параметров.
func parseCoordinate(query url.Values, latKey, lonKey string) (domain.Coordinate, bool) {
	lat := parseFloat(query, latKey)
	lon := parseFloat(query, lonKey)
	if lat == nil || lon == nil {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: *lat, Lon: *lon}, true
}
