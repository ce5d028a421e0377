// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const postgresCheckName = "postgres"

// DB is a PostgreSQL connection pool that doubles as a readiness checker.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN. The pool connects
// lazily; an unreachable database at startup is logged, not fatal, and
// shows up in the readiness report instead. The startup ping is bounded by
// pingTimeout when it is positive.
func NewConnectPostgres(ctx context.Context, cfg config.DB, pingTimeout time.Duration, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrDSNIsEmpty
	}

	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(2)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.startupPing(ctx, pingTimeout); err != nil {
		log.Warn().Err(err).Str("func", "NewConnectPostgres").Msg("database is not reachable yet")
		return db, nil
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func (db *DB) startupPing(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// Name implements the readiness checker contract.
func (db *DB) Name() string {
	return postgresCheckName
}

// Check pings the database and runs a trivial query. Postgres error codes
// are logged together with their retry classification.
func (db *DB) Check(ctx context.Context) error {
	log := logger.FromContextOr(ctx, db.logger)

	if err := db.PingContext(ctx); err != nil {
		db.logFailure(log, "ping", err)
		return fmt.Errorf("%w: %w", ErrDatabaseUnreachable, err)
	}

	query, args, err := buildProbeQuery()
	if err != nil {
		return err
	}

	var one int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		db.logFailure(log, "probe", err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if one != 1 {
		return fmt.Errorf("%w: probe returned %d", ErrExecutingQuery, one)
	}

	return nil
}

func (db *DB) logFailure(log *logger.Logger, step string, err error) {
	event := log.Warn().Err(err).Str("step", step)
	if code := postgresError(err); code != "" {
		event = event.Str("pg_code", code).
			Bool("retryable", db.errorClassificator.Classify(err) == Retryable)
	}
	event.Msg("database check failed")
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
