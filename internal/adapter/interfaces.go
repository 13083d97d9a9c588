// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a client of the server's JSON API. The health probe
// binary uses it to check a running instance.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-web-bootstrap/models"
)

// ServerAdapter talks to a running web server over HTTP.
type ServerAdapter interface {
	// Health returns the reported status. A 503 still decodes the body and
	// is returned together with ErrUnavailable.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version returns the server's version and build information.
	Version(ctx context.Context) (models.ServerVersion, error)
}
