// Package http implements the HTTP transport layer of the license
// server: the JRebel and JetBrains activation endpoints, the admin API,
// the activation web pages, and the status and metrics endpoints.
// Tracing, logging, metrics, and admin authentication concerns are all
// handled at this layer before requests reach the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/jrebel-license-server/internal/logger"
	"github.com/MKhiriev/jrebel-license-server/internal/utils"
)

// auth is an HTTP middleware that protects the admin API.
//
// It inspects the incoming "Authorization" header and accepts either of
// the two configured credentials:
//   - a static API token resolved at startup, or
//   - a bearer JWT issued by the admin login endpoint.
//
// On success the authenticated principal ("api" for static tokens, the
// admin username for JWTs) is stored in the request context under
// [utils.AdminCtxKey]. Requests failing any check are rejected with
// HTTP 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		principal := "api"
		if !h.services.AdminService.IsAPIToken(tokenString) {
			token, err := h.services.AdminService.ParseToken(tokenString)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			principal = token.Username
		}

		ctx := context.WithValue(r.Context(), utils.AdminCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
