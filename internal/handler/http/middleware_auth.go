// Package http implements the HTTP transport of the facade server.
// It provides middleware, route handlers, and request/response utilities.
// Authentication, logging, tracing, metrics and compression are all handled
// at this layer before requests are forwarded to the service layer.
package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-io-gate/internal/logger"
)

// withAuth is an HTTP middleware that enforces the single Basic credential.
//
// When authentication is enabled the "Authorization" header must equal the
// precomputed "Basic <base64(user:password)>" value byte for byte. Anything
// else, including a missing header, is answered with 401, an empty body and
// a "WWW-Authenticate" challenge carrying the configured realm. The check
// runs before routing, so unknown paths are not revealed to anonymous
// callers.
//
// With authentication disabled the middleware is a pass-through.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	if h.auth == nil {
		return next
	}

	expected := []byte(h.authHeader)
	challenge := h.auth.Challenge()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(authHeader), expected) != 1 {
			log := logger.FromRequest(r)
			if authHeader == "" {
				log.Err(ErrEmptyAuthorizationHeader).Send()
			} else {
				log.Err(ErrInvalidCredentials).Send()
			}

			w.Header().Set("WWW-Authenticate", challenge)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
