package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-io-gate/internal/logger"
)

// entryName returns the flat entry name addressed by r: the escaped path
// without its single leading slash. The query string is not part of it.
func entryName(r *http.Request) string {
	return strings.TrimPrefix(r.URL.EscapedPath(), "/")
}

func (h *Handler) readInput(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := entryName(r)

	body, err := h.services.IOService.ReadInput(r.Context(), name)
	if err != nil {
		log.Err(err).Str("input", name).Msg("error reading input")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *Handler) writeOutput(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := entryName(r)

	// unknown outputs are rejected before their body is read
	if err := h.services.IOService.LookupOutput(r.Context(), name); err != nil {
		log.Err(err).Str("output", name).Msg("error writing output")
		w.WriteHeader(statusFromError(err))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.bodyLimit))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		log.Err(err).Str("output", name).Msg("error reading request body")
		w.WriteHeader(statusFromError(err))
		return
	}

	if err = h.services.IOService.WriteOutput(r.Context(), name, string(body)); err != nil {
		log.Err(err).Str("output", name).Msg("error writing output")
		w.WriteHeader(statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// notFound answers unknown methods and paths with an empty 404.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
