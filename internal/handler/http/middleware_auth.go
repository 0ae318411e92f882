package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/utils"
)

// requireAuth is an HTTP middleware that enforces JWT-based authentication
// on console-only routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken] and, on success,
// stores the authenticated console account name in the request context
// under [utils.UsernameCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]);
//   - the token has expired ([service.ErrTokenIsExpired]);
//   - the token is otherwise invalid.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.auth.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
