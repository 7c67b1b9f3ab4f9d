package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidateToken struct {
	claims *domain.Claims
	err    error
}

func (s *stubValidateToken) Execute(ctx context.Context, token string) (*domain.Claims, error) {
	return s.claims, s.err
}

func claimsEcho() (http.Handler, *bool, **domain.Claims) {
	called := false
	var seen *domain.Claims
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen = contextkeys.ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, &called, &seen
}

func TestAuthenticateWithoutHeaderIsAnonymous(t *testing.T) {
	mw := NewAuthMiddleware(&stubValidateToken{})
	next, called, seen := claimsEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
	assert.Nil(t, *seen)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubValidateToken{err: domain.ErrTokenInvalid})
	next, called, _ := claimsEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubValidateToken{})
	next, called, _ := claimsEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthenticatePutsClaimsIntoContext(t *testing.T) {
	claims := &domain.Claims{UserID: uuid.New(), Role: domain.RoleBuyer}
	mw := NewAuthMiddleware(&stubValidateToken{claims: claims})
	next, _, seen := claimsEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, *seen)
	assert.Equal(t, claims.UserID, (*seen).UserID)
}

func TestRequireAuth(t *testing.T) {
	mw := NewAuthMiddleware(&stubValidateToken{})
	next, called, _ := claimsEcho()

	// Без claims в контексте — 401.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", nil)
	rec := httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)

	// С claims пропускает.
	claims := &domain.Claims{UserID: uuid.New(), Role: domain.RoleSeller}
	req = httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", nil)
	req = req.WithContext(contextkeys.ContextWithClaims(req.Context(), claims))
	rec = httptest.NewRecorder()
	mw.RequireAuth(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdmin(t *testing.T) {
	mw := NewAuthMiddleware(&stubValidateToken{})
	next, called, _ := claimsEcho()

	buyer := &domain.Claims{UserID: uuid.New(), Role: domain.RoleBuyer}
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/config", nil)
	req = req.WithContext(contextkeys.ContextWithClaims(req.Context(), buyer))
	rec := httptest.NewRecorder()
	mw.RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)

	moderator := &domain.Claims{UserID: uuid.New(), Role: domain.RoleModerator}
	req = httptest.NewRequest(http.MethodPut, "/api/v1/admin/config", nil)
	req = req.WithContext(contextkeys.ContextWithClaims(req.Context(), moderator))
	rec = httptest.NewRecorder()
	mw.RequireAdmin(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
