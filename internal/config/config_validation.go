// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLength = 16

// weakSessionSecrets are placeholder literals commonly left in sample
// configurations. They are rejected regardless of length.
var weakSessionSecrets = map[string]struct{}{
	"secret":                {},
	"changeme":              {},
	"keyboard cat":          {},
	"changeme-session-key!": {},
}

// validate checks that the final merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.RunMode != RunModeDevelopment && cfg.App.RunMode != RunModeProduction {
		return fmt.Errorf("%w: unknown run mode %q", ErrInvalidAppConfigs, cfg.App.RunMode)
	}

	if _, weak := weakSessionSecrets[strings.ToLower(cfg.App.SessionSecret)]; weak ||
		len(cfg.App.SessionSecret) < minSessionSecretLength {
		return ErrWeakSessionSecret
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.SessionCookieName == "" {
		return fmt.Errorf("%w: session ttl and cookie name are required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.ActiveDSN() == "" {
		return fmt.Errorf("%w: no database DSN for run mode %q", ErrInvalidStorageConfigs, cfg.App.RunMode)
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionBackendSQL:
	case SessionBackendRedis:
		if cfg.Storage.Sessions.Redis.Address == "" {
			return fmt.Errorf("%w: redis session backend requires an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidStorageConfigs, cfg.Storage.Sessions.Backend)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.DBPingInterval <= 0 || cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
