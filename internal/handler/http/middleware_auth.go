// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, and logging concerns are all
// handled at this layer before requests reach the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/utils"
)

// auth is the session gate applied to every protected route.
//
// It extracts the bearer credential from the "Authorization" header and runs
// the full re-validation machinery via [service.AuthService.ValidateSession]:
// structural verification, session mirror lookup, sliding expiry check and
// in-place refresh. There is no shallow fast path; every gated request pays
// for and receives the same validation depth.
//
// On success only the user's ID and role are stored in the request context
// under [utils.UserIDCtxKey] and [utils.UserRoleCtxKey]. Rejections are
// HTTP 401 with the uniform message body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		sessionUser, err := h.services.Auth.ValidateSession(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session validation failed")
			writeMessage(w, messageFromError(err), statusFromError(err))
			return
		}

		// Only the id and role travel in the context; downstream handlers
		// never see the email or the credential itself.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, sessionUser.ID)
		ctx = context.WithValue(ctx, utils.UserRoleCtxKey, sessionUser.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
