// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/yubraaj11/AIDaily/internal/service"
)

// Scheduler triggers one fetch invocation per day at a fixed local hour.
// It shares the service lock with manual requests, so an overlapping
// manual fetch and a scheduled run cannot interleave their cursor and
// index writes.
type Scheduler struct {
	Hour int
	Svc  *service.Service
	Log  *slog.Logger
}

// Run blocks until ctx is cancelled, firing the daily fetch at each
// occurrence of Hour. Failures are logged and left for the next cycle;
// there are no retries in between.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := nextRun(time.Now(), s.Hour)
		if s.Log != nil {
			s.Log.Info("daily fetch scheduled", "at", next)
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		outcome, err := s.Svc.FetchAndStore(ctx)
		if err != nil {
			if s.Log != nil {
				s.Log.Error("scheduled fetch failed", "error", err)
			}
			continue
		}
		if s.Log != nil {
			s.Log.Info("scheduled fetch complete",
				"status", outcome.Status, "paper", outcome.Paper.ID)
		}
	}
}

// nextRun returns the next occurrence of hour after now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
