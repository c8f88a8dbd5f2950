// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nina Roshal

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockWorker tracks how many times Run was called and signals each call.
type mockWorker struct {
	runCount atomic.Int32
	started  chan struct{}
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{}, 1)}
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	m.started <- struct{}{}
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w1 := newMockWorker()
	w2 := newMockWorker()
	w3 := newMockWorker()

	NewWorkers(w1, w2, w3).Run(ctx)

	for i, w := range []*mockWorker{w1, w2, w3} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatalf("worker[%d] was not started", i)
		}
		assert.Equal(t, int32(1), w.runCount.Load())
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on an empty workers list
	NewWorkers().Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	// Should not panic when the workers field is nil
	ws := &Workers{}
	ws.Run(context.Background())
}
