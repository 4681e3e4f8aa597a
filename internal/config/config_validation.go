// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Database dialects understood by the store layer.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Rate limiter strategies.
const (
	StrategyMovingWindow = "moving-window"
	StrategyTokenBucket  = "token-bucket"
)

var logLevels = map[string]struct{}{
	"TRACE":    {},
	"DEBUG":    {},
	"INFO":     {},
	"WARN":     {},
	"WARNING":  {},
	"ERROR":    {},
	"CRITICAL": {},
	"FATAL":    {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.Storage.DB.Dialect(); err != nil {
		return err
	}

	if cfg.Storage.DB.PoolSize < 1 || cfg.Storage.DB.MaxOverflow < 0 {
		return fmt.Errorf("%w: pool size %d, overflow %d", ErrInvalidStorageConfigs,
			cfg.Storage.DB.PoolSize, cfg.Storage.DB.MaxOverflow)
	}

	if !cfg.Storage.Redis.IsMemory() &&
		!strings.HasPrefix(cfg.Storage.Redis.URL, "redis://") &&
		!strings.HasPrefix(cfg.Storage.Redis.URL, "rediss://") {
		return fmt.Errorf("%w: unsupported rate limit store %q", ErrInvalidStorageConfigs, cfg.Storage.Redis.URL)
	}

	if _, ok := logLevels[strings.ToUpper(cfg.Log.Level)]; !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.RateLimit.Strategy {
	case StrategyMovingWindow:
	case StrategyTokenBucket:
		if !cfg.Storage.Redis.IsMemory() {
			return fmt.Errorf("%w: %s is only supported with memory://", ErrInvalidRateLimitConfigs, StrategyTokenBucket)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidRateLimitConfigs, cfg.RateLimit.Strategy)
	}

	if strings.TrimSpace(cfg.RateLimit.Guest) == "" {
		return fmt.Errorf("%w: empty guest policy", ErrInvalidRateLimitConfigs)
	}

	return nil
}

// Dialect resolves the database dialect from the DSN scheme.
func (d DB) Dialect() (string, error) {
	dsn := strings.TrimSpace(d.DSN)
	switch {
	case dsn == "":
		return "", fmt.Errorf("%w: empty database URL", ErrInvalidStorageConfigs)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, nil
	case strings.Contains(dsn, "://"):
		return "", fmt.Errorf("%w: unsupported database URL scheme in %q", ErrInvalidStorageConfigs, dsn)
	default:
		return DialectSQLite, nil
	}
}

// DataSource returns the DSN in the form expected by the database driver.
func (d DB) DataSource() string {
	dsn := strings.TrimSpace(d.DSN)
	return strings.TrimPrefix(dsn, "sqlite://")
}
