// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
)

const pingTimeout = 2 * time.Second

type connectionState int

const (
	stateUnknown connectionState = iota
	stateUp
	stateDown
	stateNeverUp
)

// ConnectionMonitor pings every backing connection periodically and logs
// state transitions: the first successful ping (open), a failure after
// success (disconnected), recovery (reconnected), and failures before the
// connection was ever up (error).
type ConnectionMonitor struct {
	pingers  map[string]store.Pinger
	interval time.Duration

	states map[string]connectionState
	up     *prometheus.GaugeVec

	logger *logger.Logger
}

// NewConnectionMonitor registers the connection_up gauge on registerer.
// A nil registerer disables the gauge export.
func NewConnectionMonitor(pingers map[string]store.Pinger, interval time.Duration, registerer prometheus.Registerer, logger *logger.Logger) *ConnectionMonitor {
	up := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "webbootstrap",
		Name:      "connection_up",
		Help:      "Whether the last ping of a backing connection succeeded.",
	}, []string{"target"})
	if registerer != nil {
		registerer.MustRegister(up)
	}

	return &ConnectionMonitor{
		pingers:  pingers,
		interval: interval,
		states:   make(map[string]connectionState, len(pingers)),
		up:       up,
		logger:   logger,
	}
}

func (m *ConnectionMonitor) Run(ctx context.Context) {
	m.logger.Info().Dur("interval", m.interval).Msg("connection monitor started")
	defer m.logger.Info().Msg("connection monitor stopped")

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check pings every target once, in name order.
func (m *ConnectionMonitor) check(ctx context.Context) {
	for _, name := range slices.Sorted(maps.Keys(m.pingers)) {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := m.pingers[name].PingContext(pingCtx)
		cancel()

		if ctx.Err() != nil {
			return
		}
		m.transition(name, err)
	}
}

func (m *ConnectionMonitor) transition(name string, err error) {
	prev := m.states[name]
	log := m.logger.With().Str("target", name).Logger()

	if err == nil {
		m.states[name] = stateUp
		m.up.WithLabelValues(name).Set(1)

		switch prev {
		case stateUnknown, stateNeverUp:
			log.Info().Msg("connection open")
		case stateDown:
			log.Info().Msg("connection reconnected")
		}
		return
	}

	m.up.WithLabelValues(name).Set(0)

	switch prev {
	case stateUp:
		m.states[name] = stateDown
		log.Warn().Err(err).Msg("connection disconnected")
	case stateUnknown:
		m.states[name] = stateNeverUp
		log.Error().Err(err).Msg("connection error")
	default:
		log.Debug().Err(err).Msg("connection still down")
	}
}
