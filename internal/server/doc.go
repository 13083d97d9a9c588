// Package server runs the HTTP transport: it listens on the configured
// address, serves until its context is done and then shuts down gracefully
// within the configured timeout.
package server
