package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rnrran/HUBDAM-KP/internal/domain/auth"
	"github.com/rnrran/HUBDAM-KP/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, invalid or
// expired, and requests presenting anything but an access token. Refresh
// tokens are only honored by the auth endpoints themselves.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if errors.Is(err, jwtauth.ErrExpired) {
				response.HandleError(w, auth.ErrTokenExpired)
				return
			}
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
