// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the web server from its configuration and owns its
// lifecycle: construction, serving, and graceful shutdown.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/handler"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/server"
	"github.com/MKhiriev/go-web-bootstrap/internal/service"
	"github.com/MKhiriev/go-web-bootstrap/internal/session"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/internal/workers"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

// App is the running web server with everything it depends on.
type App struct {
	storages *store.Storages
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// New builds the application in dependency order. Connections opened before
// a failure are released before New returns.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	log.Info().Str("run_mode", cfg.App.RunMode).Msg("initializing application")

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	sessions := session.NewManager(storages.SessionStore, cfg.App, log)
	services := service.NewServices(storages, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		storages: storages,
		server:   srv,
		workers:  newWorkers(cfg.Workers, storages, handlers, log),
		logger:   log,
	}, nil
}

func newWorkers(cfg config.Workers, storages *store.Storages, handlers *handler.Handlers, log *logger.Logger) *workers.Workers {
	var monitor, janitor workers.Worker
	if cfg.DBPingInterval > 0 {
		monitor = workers.NewConnectionMonitor(storages.Pingers(), cfg.DBPingInterval, handlers.HTTP.MetricsRegisterer(), log)
	}
	if cfg.SessionCleanupInterval > 0 {
		janitor = workers.NewSessionJanitor(storages.SessionStore, cfg.SessionCleanupInterval, log)
	}
	return workers.NewWorkers(monitor, janitor)
}

// Run serves until ctx is done, then shuts the server down gracefully and
// waits for the background workers to stop.
func (a *App) Run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		a.workers.Run(workersCtx)
	}()

	err := a.server.RunServer(ctx)

	stopWorkers()
	<-workersDone

	if err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	a.logger.Info().Msg("application stopped")
	return nil
}

// Close releases the storages. It is safe to call after Run returns.
func (a *App) Close() error {
	return a.storages.Close()
}
