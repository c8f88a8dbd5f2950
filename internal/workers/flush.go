// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package workers

import (
	"context"
	"time"

	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/internal/service"
)

const defaultFlushInterval = 5 * time.Minute

// PendingFlushWorker periodically replays cooking events that were queued
// while the server was unreachable. The history page flushes on open as
// well; this worker covers long sessions where the user never visits it.
type PendingFlushWorker struct {
	cooking  service.ClientCookingService
	interval time.Duration
	log      *logger.Logger
}

// NewPendingFlushWorker creates a flush worker ticking at the given
// interval. A non-positive interval selects the default of five minutes.
func NewPendingFlushWorker(cooking service.ClientCookingService, interval time.Duration, log *logger.Logger) *PendingFlushWorker {
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	return &PendingFlushWorker{cooking: cooking, interval: interval, log: log}
}

// Run blocks until ctx is canceled, attempting a flush on every tick.
// A failed attempt is logged and retried on the next tick.
func (w *PendingFlushWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			flushed, err := w.cooking.FlushPending(ctx)
			if err != nil {
				w.log.Warn().Err(err).Str("func", "PendingFlushWorker.Run").Msg("flush pending cooking events")
				continue
			}
			if flushed > 0 {
				w.log.Info().Int("flushed", flushed).Str("func", "PendingFlushWorker.Run").Msg("synced offline cooking events")
			}
		}
	}
}
