package config

import "errors"

// Errors returned while loading or validating the configuration.
var (
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")

	// ErrInvalidAppConfigs indicates invalid token or password hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInsecureTokenSignKey is returned in production when the token sign
	// key is empty or equals the development default.
	ErrInsecureTokenSignKey = errors.New("token sign key must be set to a non-default secret in production")

	// ErrInvalidStorageConfigs indicates a missing or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs indicates invalid upstream completion settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
