package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		RunMode             string   `json:"run_mode"`
		SessionSecret       string   `json:"session_secret"`
		SessionTTL          Duration `json:"session_ttl"`
		SessionCookieName   string   `json:"session_cookie_name"`
		SessionCookieSecure bool     `json:"session_cookie_secure"`
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		PublicDir           string   `json:"public_dir"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			DevDSN string `json:"dev_dsn"`
		} `json:"db,omitempty"`

		Sessions struct {
			Backend string `json:"backend"`
			Redis   struct {
				Address  string `json:"address"`
				Password string `json:"password"`
				DB       int    `json:"db"`
			} `json:"redis,omitempty"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		DBPingInterval         Duration `json:"db_ping_interval"`
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`

	Port string `json:"port"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			RunMode:             jsonCfg.App.RunMode,
			SessionSecret:       jsonCfg.App.SessionSecret,
			SessionTTL:          time.Duration(jsonCfg.App.SessionTTL),
			SessionCookieName:   jsonCfg.App.SessionCookieName,
			SessionCookieSecure: jsonCfg.App.SessionCookieSecure,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			PublicDir:           jsonCfg.App.PublicDir,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				DevDSN: jsonCfg.Storage.DB.DevDSN,
			},
			Sessions: Sessions{
				Backend: jsonCfg.Storage.Sessions.Backend,
				Redis: Redis{
					Address:  jsonCfg.Storage.Sessions.Redis.Address,
					Password: jsonCfg.Storage.Sessions.Redis.Password,
					DB:       jsonCfg.Storage.Sessions.Redis.DB,
				},
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Workers: Workers{
			DBPingInterval:         time.Duration(jsonCfg.Workers.DBPingInterval),
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
		},
		Port: jsonCfg.Port,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
