// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package workers

import (
	"context"
	"time"

	"github.com/vndocs/govportal/internal/logger"
)

// Refresher is the part of the portal state the refresh job drives.
type Refresher interface {
	RefreshAllData(ctx context.Context)
}

// RefreshJob periodically re-fetches all portal data from the backend so
// long-running terminals pick up records and applications created
// elsewhere. A non-positive interval disables the job.
type RefreshJob struct {
	state    Refresher
	interval time.Duration
	logger   *logger.Logger

	ctx context.Context
}

func NewRefreshJob(ctx context.Context, state Refresher, interval time.Duration, logger *logger.Logger) *RefreshJob {
	return &RefreshJob{
		state:    state,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
	}
}

// Run starts the ticker loop in a background goroutine and returns
// immediately. The loop exits when the job's context is cancelled.
func (j *RefreshJob) Run() {
	if j.interval <= 0 {
		j.logger.Info().Msg("data refresh job disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.logger.Info().Dur("interval", j.interval).Msg("data refresh job started")

		for {
			select {
			case <-j.ctx.Done():
				j.logger.Info().Msg("data refresh job stopped")
				return
			case <-ticker.C:
				j.state.RefreshAllData(j.ctx)
			}
		}
	}()
}
