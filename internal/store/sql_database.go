// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/metrics"
	"github.com/MKhiriev/items-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB owns the connection pool and hands out scoped sessions.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the pool for the configured DSN, bounds it, verifies the
// database is reachable and applies pending migrations.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case config.DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, dialect)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("func", "NewDB").Str("dialect", dialect).Msg("database is ready")
	return db, nil
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == config.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// configurePool applies the base + overflow sizing to conn.
func configurePool(conn *sql.DB, cfg config.DB) {
	conn.SetMaxIdleConns(cfg.PoolSize)
	conn.SetMaxOpenConns(cfg.MaxOpenConns())
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
}

// Dialect returns the database dialect the pool was opened with.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// WithSession runs fn inside a transaction. The transaction is committed
// when fn returns nil and rolled back when fn returns an error or panics;
// a panic is re-raised after the rollback.
func (db *DB) WithSession(ctx context.Context, fn func(ctx context.Context, s Session) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithSession").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*DB.WithSession").Msg("failed to roll back transaction")
		}
		metrics.DBSessionsTotal.WithLabelValues(metrics.OutcomeRollback).Inc()
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithSession").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	committed = true
	metrics.DBSessionsTotal.WithLabelValues(metrics.OutcomeCommit).Inc()
	return nil
}

// Close disposes the pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database pool")
	return db.DB.Close()
}
