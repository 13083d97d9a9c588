package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown run mode or a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrWeakSessionSecret indicates a missing, short or placeholder
	// session signing secret.
	ErrWeakSessionSecret = errors.New("session secret is missing or too weak")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, no DSN for the active run mode).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero ping interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
