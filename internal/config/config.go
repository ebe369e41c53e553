// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// StructuredConfig is the top-level configuration container for the
// go-shop server. It aggregates all sub-configurations and is populated by
// merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the security settings. The token settings are loaded and
	// validated but no component issues tokens.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Logger holds logging settings.
	Logger Logger `envPrefix:"LOG_"`

	// Adapter holds the settings of the API client in package adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level security settings.
type App struct {
	// SecretKey is the application secret.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Algorithm names the token signing algorithm (e.g. "HS256").
	// Env: ALGORITHM
	Algorithm string `env:"ALGORITHM"`

	// AccessTokenExpireMinutes is the nominal access token lifetime.
	// Env: ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// BcryptCost is the work factor of password hashing. Zero selects
	// bcrypt.DefaultCost.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database URL. Accepted forms:
	//   sqlite:///relative/path.db, sqlite:////absolute/path.db, sqlite://
	//   (in-memory), a bare file path, postgres://... or postgresql://...
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000" or ":8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Logger holds logging settings.
type Logger struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Adapter holds the settings of the HTTP API client.
type Adapter struct {
	// BaseURL is the root URL of the server (e.g. "http://localhost:8000").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultDSN                      = "sqlite:///./test.db"
	DefaultSecretKey                = "your_secret_key"
	DefaultAlgorithm                = "HS256"
	DefaultAccessTokenExpireMinutes = 30
	DefaultHTTPAddress              = ":8000"
	DefaultShutdownTimeout          = 10 * time.Second
	DefaultLogLevel                 = "debug"
	DefaultEnvFile                  = ".env"
	DefaultAdapterBaseURL           = "http://localhost:8000"
	DefaultAdapterRequestTimeout    = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SecretKey:                DefaultSecretKey,
			Algorithm:                DefaultAlgorithm,
			AccessTokenExpireMinutes: DefaultAccessTokenExpireMinutes,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logger: Logger{Level: DefaultLogLevel},
		Adapter: Adapter{
			BaseURL:        DefaultAdapterBaseURL,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// MarshalZerologObject logs the configuration with the secret and the
// database password redacted.
func (cfg StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	secret := ""
	if cfg.App.SecretKey != "" {
		secret = "***"
	}

	e.Str("secret_key", secret).
		Str("algorithm", cfg.App.Algorithm).
		Int("access_token_expire_minutes", cfg.App.AccessTokenExpireMinutes).
		Int("bcrypt_cost", cfg.App.BcryptCost).
		Str("database_url", redactDSN(cfg.Storage.DB.DSN)).
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Str("log_level", cfg.Logger.Level).
		Str("json_config", cfg.JSONFilePath)
}

// redactDSN masks the password of a URL-style DSN. A DSN that does not
// parse as a URL is masked entirely.
func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "***"
	}

	return u.Redacted()
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources (last source wins for non-zero fields):
//  1. Defaults
//  2. .env file (path from ENV_FILE, default ".env"; missing file is ignored)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
