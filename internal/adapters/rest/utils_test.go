package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrEmailInUse, http.StatusConflict},
		{domain.ErrInvalidCoordinates, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error: %v", tc.err)
	}
}

func TestHandleErrorValidation(t *testing.T) {
	vErr := domain.NewValidationError()
	vErr.Add("price", "must be >= 0")
	vErr.Add("listing_type", "must be one of: sale, rent, auction, lease_to_own")

	rec := httptest.NewRecorder()
	HandleError(rec, vErr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields, "price")
	assert.Contains(t, body.Fields, "listing_type")
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
	page := ParsePagination(req)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings?page=3&perPage=50", nil)
	page = ParsePagination(req)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 50, page.PerPage)

	// За пределами лимита — возврат к значению по умолчанию.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/listings?page=-1&perPage=1000", nil)
	page = ParsePagination(req)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
}

func TestParseCoordinate(t *testing.T) {
	query := url.Values{"latitude": {"40.7128"}, "longitude": {"-74.0060"}}
	coord, ok := parseCoordinate(query, "latitude", "longitude")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, coord.Lat, 0.0001)
	assert.InDelta(t, -74.0060, coord.Lon, 0.0001)

	_, ok = parseCoordinate(url.Values{"latitude": {"40.7"}}, "latitude", "longitude")
	assert.False(t, ok)

	_, ok = parseCoordinate(url.Values{"latitude": {"abc"}, "longitude": {"1"}}, "latitude", "longitude")
	assert.False(t, ok)
}
