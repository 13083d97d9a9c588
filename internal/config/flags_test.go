package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "all interfaces", addr: NetAddress{Port: 3000}, expected: ":3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:80", want: NetAddress{Host: "127.0.0.1", Port: 80}},
		{name: "empty host", input: ":3000", want: NetAddress{Port: 3000}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8081",
		"-p", "9000",
		"-m", "development",
		"-d", "postgres://prod",
		"-dev-d", "file:dev.db",
		"-public", "./www",
		"-session-secret", "flag-session-secret-value",
		"-session-ttl", "6h",
		"-token-sign-key", "flag-key",
		"-token-issuer", "flag-issuer",
		"-token-duration", "10m",
		"-request-timeout", "7s",
		"-sessions-backend", "redis",
		"-redis-address", "localhost:6379",
		"-config", "/etc/app.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, RunModeDevelopment, cfg.App.RunMode)
	assert.Equal(t, "postgres://prod", cfg.Storage.DB.DSN)
	assert.Equal(t, "file:dev.db", cfg.Storage.DB.DevDSN)
	assert.Equal(t, "./www", cfg.App.PublicDir)
	assert.Equal(t, "flag-session-secret-value", cfg.App.SessionSecret)
	assert.Equal(t, 6*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 10*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, SessionBackendRedis, cfg.Storage.Sessions.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Sessions.Redis.Address)
	assert.Equal(t, "/etc/app.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
