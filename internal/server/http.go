package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

const (
	readHeaderTimeout      = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          logger.StdLogger(),
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

// RunServer listens on the configured address and serves until ctx is done.
func (h *httpServer) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.server.Addr, err)
	}
	return h.serve(ctx, ln)
}

func (h *httpServer) serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.server.Serve(ln)
	}()
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	return h.shutdown()
}

// shutdown stops accepting connections and waits for in-flight requests.
// Connections still open after the timeout are closed forcibly.
func (h *httpServer) shutdown() error {
	h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("HTTP server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		closeErr := h.server.Close()
		if errors.Is(err, context.DeadlineExceeded) {
			err = errShutdownTimedOut
		}
		return errors.Join(fmt.Errorf("shutdown http server: %w", err), closeErr)
	}

	h.logger.Info().Msg("HTTP server stopped gracefully")
	return nil
}
