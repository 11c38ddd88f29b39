package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/internal/workers"
	"github.com/MKhiriev/go-io-gate/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

// Settings configures the process runner.
type Settings struct {
	// MetricsAddress, when set, serves GET /metrics on its own listener.
	MetricsAddress string
	// ShutdownTimeout bounds the graceful shutdown. Zero means 10s.
	ShutdownTimeout time.Duration
	// Workers run for the lifetime of the facade.
	Workers []workers.Worker
}

type server struct {
	cfg      *models.IOConfig
	inputs   models.InputRegistry
	outputs  models.OutputRegistry
	settings Settings
	opts     []Option

	registry *prometheus.Registry
	logger   *logger.Logger
}

func NewServer(cfg *models.IOConfig, inputs models.InputRegistry, outputs models.OutputRegistry, settings Settings, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")
	if cfg == nil {
		return nil, errNilConfig
	}
	if settings.ShutdownTimeout <= 0 {
		settings.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &server{
		cfg:      cfg,
		inputs:   inputs,
		outputs:  outputs,
		settings: settings,
		opts:     append([]Option{WithLogger(logger)}, opts...),
		logger:   logger,
	}

	if settings.MetricsAddress != "" {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.opts = append(s.opts, WithMetrics(s.registry))
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Run(ctx context.Context) error {
	facade, err := Start(s.cfg, s.inputs, s.outputs, s.opts...)
	if err != nil {
		return err
	}

	servers := []*httpServer{facade.srv}
	if metrics := facade.MetricsHandler(); metrics != nil {
		metricsServer, err := listenHTTP("metrics", s.settings.MetricsAddress, metrics, s.logger)
		if err != nil {
			s.shutdown(facade.srv)
			return err
		}
		servers = append(servers, metricsServer)
	}

	g, gctx := errgroup.WithContext(ctx)

	// a listener that stops on its own takes the others down with it
	for _, srv := range servers {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return nil
			case <-srv.done:
				return srv.serveErr
			}
		})
	}

	background := workers.NewWorkers(s.settings.Workers...)
	background.Start(gctx)

	<-gctx.Done()

	background.Stop()
	for _, srv := range servers {
		s.shutdown(srv)
	}

	return g.Wait()
}

func (s *server) shutdown(srv *httpServer) {
	ctx, cancel := context.WithTimeout(context.Background(), s.settings.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Err(err).Str("server", srv.name).Msg("error shutting down")
	}
}
