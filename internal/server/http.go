package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

// httpServer serves one handler on an already bound listener.
type httpServer struct {
	name     string
	server   *http.Server
	listener net.Listener

	done     chan struct{}
	serveErr error

	shutdownOnce sync.Once
	shutdownErr  error

	logger *logger.Logger
}

// listenHTTP binds address synchronously and starts serving handler in the
// background.
func listenHTTP(name, address string, handler http.Handler, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, address, err)
	}

	h := &httpServer{
		name: name,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		done:     make(chan struct{}),
		logger:   logger,
	}

	go h.serve()

	h.logger.Info().Str("server", name).Str("address", listener.Addr().String()).Msg("HTTP server listening")
	return h, nil
}

func (h *httpServer) serve() {
	defer close(h.done)

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Str("server", h.name).Msg("HTTP server Serve")
		h.serveErr = err
	}
}

// Shutdown closes the listener, waits for in-flight requests and returns
// once serving stopped. Later calls return the first result.
func (h *httpServer) Shutdown(ctx context.Context) error {
	h.shutdownOnce.Do(func() {
		err := h.server.Shutdown(ctx)
		if err != nil {
			// deadline hit: drop the remaining connections
			h.server.Close()
		}
		<-h.done

		h.shutdownErr = err
		h.logger.Info().Str("server", h.name).Msg("HTTP server Shutdown")
	})
	return h.shutdownErr
}
