// Command healthcheck probes a running server's health endpoint and exits
// non-zero when the server or one of its stores is unavailable. It is meant
// for container health checks.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-web-bootstrap/internal/adapter"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
)

func main() {
	addr := flag.String("a", "http://127.0.0.1:8080", "base URL of the server")
	timeout := flag.Duration("t", 3*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("healthcheck", false)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *addr, Timeout: *timeout})
	status, err := client.Health(ctx)
	if err != nil {
		log.Error().Err(err).Str("database", status.Database).Str("sessions", status.Sessions).Msg("server is unhealthy")
		os.Exit(1)
	}

	log.Info().Str("status", status.Status).Msg("server is healthy")
}
