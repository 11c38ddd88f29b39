package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-io-gate/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInputNotFound:    http.StatusNotFound,
	service.ErrOutputNotFound:   http.StatusNotFound,
	service.ErrInputConversion:  http.StatusInternalServerError,
	service.ErrOutputConversion: http.StatusBadRequest,
	service.ErrConverterPanic:   http.StatusInternalServerError,

	service.ErrUnresolvedConverter: http.StatusInternalServerError,

	ErrBodyTooLarge:          http.StatusRequestEntityTooLarge,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
