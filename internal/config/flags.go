package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p listen port (used when -a is not given)
//	-m run mode: development | production
//	-d production database DSN
//	-dev-d development database DSN
//	-public static assets directory
//	-session-secret session cookie signing secret
//	-session-ttl session lifetime after last write (e.g. "24h")
//	-token-sign-key API token signing key
//	-token-issuer API token issuer name
//	-token-duration API token lifetime (e.g. "1h")
//	-request-timeout request timeout (e.g. "30s")
//	-sessions-backend session backend: sql | redis
//	-redis-address redis address in format host:port
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var port, runMode, databaseDSN, devDatabaseDSN, publicDir string
	var sessionSecret, tokenSignKey, tokenIssuer string
	var sessionsBackend, redisAddress, jsonConfigPath string
	var sessionTTL, tokenDuration, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&port, "p", "", "Listen port")
	fs.StringVar(&runMode, "m", "", "Run mode: development | production")
	fs.StringVar(&databaseDSN, "d", "", "Production database DSN")
	fs.StringVar(&devDatabaseDSN, "dev-d", "", "Development database DSN")
	fs.StringVar(&publicDir, "public", "", "Static assets directory")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie signing secret")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionsBackend, "sessions-backend", "", "Session backend: sql | redis")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			RunMode:       runMode,
			SessionSecret: sessionSecret,
			SessionTTL:    sessionTTL,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			PublicDir:     publicDir,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				DevDSN: devDatabaseDSN,
			},
			Sessions: Sessions{
				Backend: sessionsBackend,
				Redis:   Redis{Address: redisAddress},
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
