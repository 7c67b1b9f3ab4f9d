package rest

import (
	"net/http"
	"strings"

	"marketplace-service/internal/contextkeys"
	usecases_port "marketplace-service/internal/core/port/usecases_port"
)

type AuthMiddleware struct {
	validateTokenUC usecases_port.ValidateTokenUseCase
}

func NewAuthMiddleware(validateTokenUC usecases_port.ValidateTokenUseCase) *AuthMiddleware {
	return &AuthMiddleware{validateTokenUC: validateTokenUC}
}

// Authenticate - middleware для проверки JWT.
// Запросы без заголовка Authorization проходят дальше анонимно,
// запросы с невалидным токеном отклоняются сразу.
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		claims, err := am.validateTokenUC.Execute(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := contextkeys.ContextWithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth пропускает только аутентифицированные запросы.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contextkeys.ClaimsFromContext(r.Context()) == nil {
			WriteJSONError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только администраторов и модераторов.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := contextkeys.ClaimsFromContext(r.Context())
		if claims == nil {
			WriteJSONError(w, http.StatusUnauthorized, "authorization required")
			return
		}
		if !claims.IsAdmin() {
			WriteJSONError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
