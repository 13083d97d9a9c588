// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Run modes recognised by [App.RunMode].
const (
	RunModeDevelopment = "development"
	RunModeProduction  = "production"
)

// Session backends recognised by [Sessions.Backend].
const (
	SessionBackendSQL   = "sql"
	SessionBackendRedis = "redis"
)

// StructuredConfig is the top-level configuration container for the server.
// It is populated by merging defaults, an optional .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds run mode, session and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database and session backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Port is the listen port. It is used only when Server.HTTPAddress is
	// empty and results in binding every interface.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// RunMode selects the database target and request log verbosity.
	// Env: APP_RUN_MODE
	RunMode string `env:"RUN_MODE"`

	// SessionSecret signs the session cookie. Required, no default.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionTTL is how long a session lives after its last write.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SessionCookieName is the name of the session id cookie.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// SessionCookieSecure marks the session cookie as HTTPS-only.
	// Env: APP_SESSION_COOKIE_SECURE
	SessionCookieSecure bool `env:"SESSION_COOKIE_SECURE"`

	// TokenSignKey signs API bearer tokens. Required, no default.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued bearer tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PublicDir is the root of the static assets served verbatim.
	// Env: APP_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsDevelopment reports whether the server runs in development mode.
func (a App) IsDevelopment() bool {
	return a.RunMode == RunModeDevelopment
}

// Storage groups the persistence settings.
type Storage struct {
	DB       DB       `envPrefix:"DB_"`
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds one connection string per run mode. A DSN starting with
// "postgres://" or "postgresql://" selects PostgreSQL; "file:" selects SQLite.
type DB struct {
	// DSN is used in production mode.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// DevDSN is used in development mode.
	// Env: STORAGE_DB_DEV_DATABASE_URI
	DevDSN string `env:"DEV_DATABASE_URI"`
}

// Sessions selects where session records live.
type Sessions struct {
	// Backend is "sql" (sessions table in the main database) or "redis".
	// Env: STORAGE_SESSIONS_BACKEND
	Backend string `env:"BACKEND"`

	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds the connection settings of the redis session backend.
type Redis struct {
	// Env: STORAGE_SESSIONS_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_SESSIONS_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_SESSIONS_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds intervals of the background workers.
type Workers struct {
	// DBPingInterval is how often the connection monitor pings the stores.
	// Env: WORKERS_DB_PING_INTERVAL
	DBPingInterval time.Duration `env:"DB_PING_INTERVAL"`

	// SessionCleanupInterval is how often expired sessions are purged.
	// Env: WORKERS_SESSION_CLEANUP_INTERVAL
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// ActiveDSN returns the connection string selected by the run mode.
func (cfg *StructuredConfig) ActiveDSN() string {
	if cfg.App.IsDevelopment() {
		return cfg.Storage.DB.DevDSN
	}
	return cfg.Storage.DB.DSN
}

// Redacted returns a copy of cfg with every secret masked, suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const mask = "******"
	if cfg.App.SessionSecret != "" {
		cfg.App.SessionSecret = mask
	}
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = mask
	}
	if cfg.Storage.Sessions.Redis.Password != "" {
		cfg.Storage.Sessions.Redis.Password = mask
	}
	cfg.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)
	cfg.Storage.DB.DevDSN = redactDSN(cfg.Storage.DB.DevDSN)
	return cfg
}

// GetStructuredConfig loads, merges, and validates the server configuration
// in the following priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (only when APP_RUN_MODE is not set in the environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
