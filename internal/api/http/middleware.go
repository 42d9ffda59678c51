package http

import (
	"context"
	"net/http"
	"strings"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/logger"
	"camera-rental-backend/internal/security"
	"camera-rental-backend/internal/service"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsKey    contextKey = "claims"
	requestIDKey contextKey = "request_id"
)

// Middleware bundles the auth middlewares around a shared token manager.
type Middleware struct {
	tokens security.TokenManager
}

func NewMiddleware(tokens security.TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequestID tags every request with a correlation id and logs it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		logger.WithRequest(id).Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequireAuth rejects requests without a valid bearer token.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.claimsFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "missing or invalid access token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// RequireAdmin rejects requests unless the token carries the admin role.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil || claims.Role != domain.UserRoleAdmin {
			writeError(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next(w, r)
	})
}

// OptionalAuth decodes a token when present but never rejects the request.
// Listing endpoints use it to apply role-based filtering for agents while
// staying reachable without credentials.
func (m *Middleware) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, err := m.claimsFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
		}
		next(w, r)
	}
}

func (m *Middleware) claimsFromRequest(r *http.Request) (*security.UserClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, security.ErrInvalidToken
	}
	return m.tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
}

// ClaimsFrom extracts the verified token claims, or nil.
func ClaimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

// viewerFrom converts request claims into the service-layer viewer.
func viewerFrom(ctx context.Context) *service.Viewer {
	claims := ClaimsFrom(ctx)
	if claims == nil {
		return nil
	}
	return &service.Viewer{
		UserID:    claims.UserID,
		Role:      claims.Role,
		AgentName: claims.AgentName,
	}
}
