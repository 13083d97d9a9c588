package app

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{
			RunMode:           config.RunModeDevelopment,
			SessionSecret:     "test-secret-test-secret-test-secret",
			SessionCookieName: "sid",
			SessionTTL:        24 * time.Hour,
			TokenSignKey:      "token-key",
			TokenIssuer:       "test",
			TokenDuration:     time.Hour,
			PublicDir:         t.TempDir(),
		},
		Storage: config.Storage{
			DB:       config.DB{DevDSN: "file:" + filepath.Join(t.TempDir(), "app.db")},
			Sessions: config.Sessions{Backend: config.SessionBackendSQL},
		},
		Server: config.Server{
			HTTPAddress:     freeAddress(t),
			ShutdownTimeout: time.Second,
		},
		Workers: config.Workers{
			DBPingInterval:         10 * time.Millisecond,
			SessionCleanupInterval: 10 * time.Millisecond,
		},
	}
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(context.Background(), cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", cfg.Server.HTTPAddress)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("application did not stop")
	}
}

func TestNew_FailsOnUnsupportedDSN(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.DB.DevDSN = "mysql://localhost/db"

	a, err := New(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

func TestNew_FailsWithoutListenAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.HTTPAddress = ""

	a, err := New(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}
