package http

import (
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/MKhiriev/go-io-gate/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Settings tunes the transport of a Handler. The zero value serves without
// authentication, timeout or metrics and bounds bodies with
// [models.DefaultMaxBodyBytes].
type Settings struct {
	Auth           *models.Auth
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	Registerer     prometheus.Registerer
}

type Handler struct {
	services *service.Services

	auth       *models.Auth
	authHeader string
	bodyLimit  int64
	timeout    time.Duration
	metrics    *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) (*Handler, error) {
	h := &Handler{
		services:  services,
		bodyLimit: settings.MaxBodyBytes,
		timeout:   settings.RequestTimeout,
		logger:    logger,
	}
	if h.bodyLimit <= 0 {
		h.bodyLimit = models.DefaultMaxBodyBytes
	}

	if settings.Auth.Enabled() {
		h.auth = settings.Auth
		h.authHeader = settings.Auth.Header()
	}

	if settings.Registerer != nil {
		m, err := newMetrics(settings.Registerer)
		if err != nil {
			return nil, err
		}
		h.metrics = m
	}

	logger.Info().Bool("auth", h.auth != nil).Msg("http handler created")
	return h, nil
}
