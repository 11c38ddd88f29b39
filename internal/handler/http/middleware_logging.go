package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/rs/zerolog"
)

// directions names the registry side a facade method addresses.
var directions = map[string]string{
	http.MethodGet:  "input",
	http.MethodPost: "output",
}

// withLogging writes one access entry per request. Responses with a 5xx
// status are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		started := time.Now()

		// captured before next runs: chi and the gzip middleware may rewrite r
		entry, method, uri := entryName(r), r.Method, r.RequestURI

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		level := zerolog.InfoLevel
		if rw.Status() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		event := log.WithLevel(level).
			Str("entry", entry).
			Str("method", method).
			Str("uri", uri).
			Int("status", rw.Status()).
			Int("size", rw.size).
			Dur("duration", time.Since(started))
		if direction, ok := directions[method]; ok {
			event = event.Str("direction", direction)
		}
		event.Send()
	})
}
