// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/handler"
	httphandler "github.com/MKhiriev/go-io-gate/internal/handler/http"
	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/service"
	"github.com/MKhiriev/go-io-gate/internal/validators"
	"github.com/MKhiriev/go-io-gate/models"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	logger         *logger.Logger
	observers      []service.OutputObserver
	requestTimeout time.Duration
	registry       *prometheus.Registry
}

// Option customizes a facade started with [Start].
type Option func(*options)

// WithLogger sets the logger used by the facade. The default discards logs.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObservers registers observers notified after every successful write.
func WithObservers(observers ...service.OutputObserver) Option {
	return func(o *options) { o.observers = append(o.observers, observers...) }
}

// WithRequestTimeout bounds the handling of a single request.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithMetrics registers the request collectors on reg and exposes reg
// through [Handle.MetricsHandler].
func WithMetrics(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// Handle controls a running facade.
type Handle struct {
	srv     *httpServer
	metrics http.Handler
}

// Start validates cfg, builds the request dispatcher over inputs and outputs
// and binds cfg.Host:cfg.Port. A nil registry is built from the matching
// entries of cfg; a registry given by the caller is validated as well, so
// every served entry has a resolved converter.
//
// Validation and bind errors are returned before anything is served. On
// success the facade serves in the background until [Handle.Shutdown].
func Start(cfg *models.IOConfig, inputs models.InputRegistry, outputs models.OutputRegistry, opts ...Option) (*Handle, error) {
	if cfg == nil {
		return nil, errNilConfig
	}

	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	ctx := context.Background()
	validator := validators.NewIOConfigValidator()
	if err := validator.Validate(ctx, cfg); err != nil {
		return nil, err
	}

	if inputs == nil {
		inputs = models.NewInputRegistry(cfg.Inputs)
	} else if err := validator.Validate(ctx, inputs); err != nil {
		return nil, err
	}
	if outputs == nil {
		outputs = models.NewOutputRegistry(cfg.Outputs)
	} else if err := validator.Validate(ctx, outputs); err != nil {
		return nil, err
	}

	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)
	if o.registry != nil {
		registerer, gatherer = o.registry, o.registry
	}

	services := service.NewServices(inputs, outputs, o.logger, o.observers...)
	handlers, err := handler.NewHandlers(services, httphandler.Settings{
		Auth:           cfg.Auth,
		MaxBodyBytes:   cfg.BodyLimit(),
		RequestTimeout: o.requestTimeout,
		Registerer:     registerer,
	}, gatherer, o.logger)
	if err != nil {
		return nil, err
	}

	address := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	srv, err := listenHTTP("facade", address, handlers.HTTP.Init(), o.logger)
	if err != nil {
		return nil, err
	}

	return &Handle{srv: srv, metrics: handlers.Metrics}, nil
}

// MetricsHandler returns the Prometheus handler of the registry given with
// [WithMetrics], or nil without one.
func (h *Handle) MetricsHandler() http.Handler {
	return h.metrics
}

// Addr returns the bound listener address, useful when the port was zero.
func (h *Handle) Addr() net.Addr {
	return h.srv.listener.Addr()
}

// Done is closed once the facade stopped serving.
func (h *Handle) Done() <-chan struct{} {
	return h.srv.done
}

// Err returns the error that stopped serving, or nil after a regular
// shutdown. It is meaningful once Done is closed.
func (h *Handle) Err() error {
	select {
	case <-h.srv.done:
		return h.srv.serveErr
	default:
		return nil
	}
}

// Shutdown closes the listener and returns once in-flight requests finished
// and the facade is fully closed. When ctx ends first, remaining connections
// are dropped and ctx's error is returned. It is safe to call repeatedly.
func (h *Handle) Shutdown(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
