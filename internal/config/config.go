// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the sudoku backend.
//
// It is assembled from built-in defaults, environment variables, command-line
// flags and an optional JSON file. Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token, password hashing and runtime settings.
	App App `envPrefix:"APP_"`

	// Storage holds the identity store DSN and the optional leaderboard cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses, request timeout and CORS origins.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the upstream completion API used for hints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers configures background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON config file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Environment is "development" or "production". Production refuses to
	// start with the development token sign key.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// AdminUsername is the only account allowed to request hints.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the identity store connection settings.
type DB struct {
	// DSN selects the backend by scheme: postgres:// or postgresql:// for
	// PostgreSQL, sqlite:// or file: for SQLite, "memory" for the in-process
	// store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the Redis connection used by the leaderboard.
type Cache struct {
	// RedisURL is a redis:// URL. Empty disables the leaderboard.
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the HTTP listen address, "host:port" or ":port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter configures the chat-completions API that produces hints.
type Adapter struct {
	// CompletionURL is the API base URL, without the /v1/... path.
	// Env: ADAPTER_COMPLETION_URL
	CompletionURL string `env:"COMPLETION_URL"`

	// APIKey is sent as a bearer token to the API.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier sent with each request.
	// Env: ADAPTER_MODEL
	Model string `env:"MODEL"`

	// MaxTokens bounds the completion length.
	// Env: ADAPTER_MAX_TOKENS
	MaxTokens int `env:"MAX_TOKENS"`

	// Temperature is the sampling temperature.
	// Env: ADAPTER_TEMPERATURE
	Temperature float64 `env:"TEMPERATURE"`

	// RequestTimeout bounds a single upstream call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures background workers.
type Workers struct {
	// HealthCheckInterval is how often storage liveness is probed.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// IsProduction reports whether the service runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == ProductionEnvironment
}

// UsesDevelopmentSignKey reports whether tokens are signed with the
// well-known development secret.
func (a App) UsesDevelopmentSignKey() bool {
	return a.TokenSignKey == DevelopmentTokenSignKey
}

// Redacted returns a copy of cfg with secrets masked, safe for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const mask = "***"

	redacted := cfg
	if redacted.App.TokenSignKey != "" {
		redacted.App.TokenSignKey = mask
	}
	if redacted.Adapter.APIKey != "" {
		redacted.Adapter.APIKey = mask
	}
	if redacted.Storage.DB.DSN != "" && redacted.Storage.DB.DSN != MemoryDSN {
		redacted.Storage.DB.DSN = mask
	}
	if redacted.Storage.Cache.RedisURL != "" {
		redacted.Storage.Cache.RedisURL = mask
	}

	return redacted
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources, later sources overriding non-zero fields of earlier ones:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags (os.Args)
//  4. JSON file, path taken from sources 2 and 3
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetStorageConfig loads defaults, environment and the JSON file and
// validates only the storage section. It is meant for tools that touch the
// database without serving traffic.
func GetStorageConfig() (Storage, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return Storage{}, err
	}

	return cfg.Storage, cfg.Storage.validate()
}
