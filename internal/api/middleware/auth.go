// Package middleware provides the HTTP middleware guarding and annotating
// API requests.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/shared"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/platform/logger"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service/auth"
)

// Authenticator validates bearer tokens and places the authenticated
// user's identity into the request context.
type Authenticator struct {
	jwtService auth.JWTService
}

// NewAuthenticator creates an Authenticator using the given JWT service.
func NewAuthenticator(jwtService auth.JWTService) *Authenticator {
	return &Authenticator{jwtService: jwtService}
}

// Middleware returns the http middleware enforcing authentication.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := r.Context()
		ctx = shared.WithUserID(ctx, userID)
		ctx = shared.WithUserRole(ctx, claims.Role)
		ctx = logger.WithContext(ctx,
			logger.FromContext(ctx).With(slog.String("user_id", userID.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
