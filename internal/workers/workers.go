// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package workers

import "context"

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker on its own goroutine and returns immediately.
// Workers stop when ctx is canceled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
