// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/validations-api/internal/config"
	"github.com/MKhiriev/validations-api/internal/logger"
	"github.com/MKhiriev/validations-api/models"
	"golang.org/x/sync/errgroup"
)

const (
	checkErrTimeout     = "timeout"
	checkErrUnavailable = "unavailable"
)

type healthService struct {
	appInfo  AppInfoService
	checkers []Checker
	timeout  time.Duration

	ready atomic.Bool

	logger *logger.Logger
}

// NewHealthService builds a HealthService over the given checkers. The
// service starts not ready; the server flips the flag once listeners run.
func NewHealthService(appInfo AppInfoService, checkers []Checker, cfg config.Server, logger *logger.Logger) HealthService {
	return &healthService{
		appInfo:  appInfo,
		checkers: checkers,
		timeout:  cfg.ReadinessTimeout,
		logger:   logger,
	}
}

func (s *healthService) Liveness(ctx context.Context) models.Liveness {
	return models.Liveness{
		Status:      models.StatusAlive,
		Version:     s.appInfo.GetAppVersion(ctx),
		Environment: s.appInfo.GetEnvironment(ctx),
		Uptime:      s.appInfo.Uptime(ctx).String(),
	}
}

// Readiness runs every checker concurrently, each bounded by the readiness
// timeout. Results keep the checker registration order.
func (s *healthService) Readiness(ctx context.Context) models.Readiness {
	results := make([]models.CheckResult, len(s.checkers))

	var g errgroup.Group
	for i, checker := range s.checkers {
		g.Go(func() error {
			results[i] = s.runCheck(ctx, checker)
			return nil
		})
	}
	_ = g.Wait()

	status := models.StatusReady
	if !s.IsReady() {
		status = models.StatusNotReady
	}
	for _, res := range results {
		if res.Status != models.StatusUp {
			status = models.StatusNotReady
		}
	}

	return models.Readiness{Status: status, Checks: results}
}

func (s *healthService) runCheck(ctx context.Context, checker Checker) models.CheckResult {
	checkCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(checkCtx)
	res := models.CheckResult{
		Name:     checker.Name(),
		Status:   models.StatusUp,
		Duration: time.Since(start),
	}
	if err == nil {
		return res
	}

	res.Status = models.StatusDown
	res.Error = checkErrUnavailable
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(checkCtx.Err(), context.DeadlineExceeded) {
		res.Error = checkErrTimeout
		err = errors.Join(ErrCheckTimedOut, err)
	}
	logger.FromContextOr(ctx, s.logger).Err(err).Str("check", res.Name).Msg("dependency check error")

	return res
}

func (s *healthService) SetReady(ready bool) {
	s.ready.Store(ready)
}

func (s *healthService) IsReady() bool {
	return s.ready.Load()
}
