package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/snapscape.net/internal/core/ports/primary"
	"gitlab.com/snapscape.net/internal/domain"
)

// CronSecretHeader carries the shared secret of scheduled callers
const CronSecretHeader = "X-Cron-Secret"

type ctxKey struct{}

type MiddlewareProvider struct {
	jwtService     primary.JWTService
	cronSecretHash string
	logger         primary.Logger
}

func New(jwtService primary.JWTService, cronSecretHash string, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService:     jwtService,
		cronSecretHash: cronSecretHash,
		logger:         logger,
	}
}

// AuthPayloadFrom returns the claims stored by JWTMiddleware
func AuthPayloadFrom(ctx context.Context) (domain.AuthPayload, bool) {
	payload, ok := ctx.Value(ctxKey{}).(domain.AuthPayload)
	return payload, ok
}

// JWTMiddleware rejects requests without a valid bearer token
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			ResponseError(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		payload, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Rejected bearer token", "error", err)
			ResponseError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, payload)))
	})
}

// AdminMiddleware requires JWTMiddleware to have run first
func (m *MiddlewareProvider) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := AuthPayloadFrom(r.Context())
		if !ok {
			ResponseError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !payload.IsAdmin() {
			m.logger.Warn("Admin route denied", "userId", payload.UserID, "path", r.URL.Path)
			ResponseError(w, "Admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CronMiddleware checks the X-Cron-Secret header against the configured bcrypt hash
func (m *MiddlewareProvider) CronMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := r.Header.Get(CronSecretHeader)
		if secret == "" {
			ResponseError(w, "Cron secret missing", http.StatusUnauthorized)
			return
		}
		ok, err := m.jwtService.VerifySecret(r.Context(), m.cronSecretHash, secret)
		if err != nil || !ok {
			m.logger.Warn("Rejected cron secret", "path", r.URL.Path)
			ResponseError(w, "Invalid cron secret", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
