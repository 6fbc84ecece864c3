// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks every section of the merged configuration and joins all
// problems into one error.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Adapter.validate(),
		cfg.Workers.validate(),
	)
}

func (a App) validate() error {
	if a.Environment != DevelopmentEnvironment && a.Environment != ProductionEnvironment {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, a.Environment)
	}

	if a.IsProduction() && (a.TokenSignKey == "" || a.UsesDevelopmentSignKey()) {
		return ErrInsecureTokenSignKey
	}

	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if a.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}

	if a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if a.AdminUsername == "" {
		return fmt.Errorf("%w: empty admin username", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	dsn := s.DB.DSN
	switch {
	case dsn == "":
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	case dsn == MemoryDSN,
		strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.HasPrefix(dsn, "sqlite://"),
		strings.HasPrefix(dsn, "file:"):
		return nil
	default:
		return fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
	}
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (a Adapter) validate() error {
	if a.CompletionURL == "" || a.Model == "" {
		return fmt.Errorf("%w: completion URL and model are required", ErrInvalidAdapterConfigs)
	}

	if a.MaxTokens <= 0 || a.RequestTimeout <= 0 {
		return fmt.Errorf("%w: max tokens and request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be in [0, 2]", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (w Workers) validate() error {
	if w.HealthCheckInterval <= 0 {
		return fmt.Errorf("%w: health check interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
