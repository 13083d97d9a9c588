package config

import (
	"net/url"
	"time"
)

const (
	defaultSessionTTL        = 24 * time.Hour
	defaultSessionCookieName = "sid"
	defaultTokenIssuer       = "go-web-bootstrap"
	defaultTokenDuration     = time.Hour
	defaultPublicDir         = "public"
	defaultPort              = "8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultDBPingInterval    = 10 * time.Second
	defaultCleanupInterval   = time.Hour
	defaultDotEnvPath        = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RunMode:           RunModeProduction,
			SessionTTL:        defaultSessionTTL,
			SessionCookieName: defaultSessionCookieName,
			TokenIssuer:       defaultTokenIssuer,
			TokenDuration:     defaultTokenDuration,
			PublicDir:         defaultPublicDir,
		},
		Storage: Storage{
			Sessions: Sessions{
				Backend: SessionBackendSQL,
			},
		},
		Server: Server{
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Workers: Workers{
			DBPingInterval:         defaultDBPingInterval,
			SessionCleanupInterval: defaultCleanupInterval,
		},
		Port: defaultPort,
	}
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "******")
	}
	return u.String()
}
