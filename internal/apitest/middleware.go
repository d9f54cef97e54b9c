package apitest

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/utils"
)

type claimsKey struct{}

// ClaimsFrom returns the verified token claims of the request, if any.
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	return utils.ContextValue[*utils.Claims](ctx, claimsKey{})
}

// Gate admits requests with a valid Bearer token whose role is one of
// roles. No or bad token answers 401; a foreign role answers 403. The
// messages are the ones the real service sends.
func Gate(secret string, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				writeError(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
				return
			}
			claims, err := utils.ParseJWT(secret, tok)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Full authentication is required to access this resource")
				return
			}
			for _, role := range roles {
				if models.Role(claims.Role) == role {
					next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
					return
				}
			}
			writeError(w, http.StatusForbidden, "Access denied")
		})
	}
}

// Recoverer turns a handler panic into a 500 with a JSON message.
func Recoverer(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panic")
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
