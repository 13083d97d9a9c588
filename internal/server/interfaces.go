package server

import "context"

// Server defines the lifecycle contract of a transport server.
type Server interface {
	// RunServer serves requests and blocks until ctx is done and the
	// server has shut down, or until serving fails.
	RunServer(ctx context.Context) error
}
