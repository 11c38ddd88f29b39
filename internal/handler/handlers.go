package handler

import (
	"fmt"
	nethttp "net/http"

	"github.com/MKhiriev/go-io-gate/internal/handler/http"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the transports of one facade: the flat input/output
// router and, when a gatherer is given, the Prometheus exposition handler.
type Handlers struct {
	HTTP    *http.Handler
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, settings http.Settings, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	httpHandler, err := http.NewHandler(services, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	handlers := &Handlers{HTTP: httpHandler}
	if gatherer != nil {
		handlers.Metrics = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	return handlers, nil
}
