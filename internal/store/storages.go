// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the storage dependencies of validations-api. The only
// storage today is an optional PostgreSQL database whose health is part of
// the readiness report.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
)

// ErrorClassificator decides whether a failed database operation may
// succeed if retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Storages groups the configured storage dependencies. Fields are nil when
// the corresponding storage is not configured.
type Storages struct {
	DB *DB
}

// NewStorages opens every storage configured in cfg. Startup connectivity
// checks give up after pingTimeout.
func NewStorages(ctx context.Context, cfg config.Storage, pingTimeout time.Duration, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}
	if cfg.DB.DSN == "" {
		return storages, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, pingTimeout, log)
	if err != nil {
		return nil, err
	}
	storages.DB = db

	return storages, nil
}

// Close releases every opened storage.
func (s *Storages) Close() error {
	var errs []error
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
