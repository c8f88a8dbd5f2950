package session

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroshal/tastebook/internal/logger"
)

func TestWatcher_ExternalWriteReachesSubscriber(t *testing.T) {
	store, dir := newTestStore(t)

	var pokes atomic.Int32
	store.Subscribe(func() { pokes.Add(1) })

	w, err := NewWatcher(store, dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Another process committing a session into the shared directory.
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenEntry), []byte("ext-token"), 0o600))

	require.Eventually(t, func() bool {
		return pokes.Load() > 0
	}, 2*time.Second, 10*time.Millisecond, "external write never reached the subscriber")

	snap := store.Snapshot()
	require.NotNil(t, snap.Token)
	assert.Equal(t, "ext-token", *snap.Token)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	store, dir := newTestStore(t)

	var pokes atomic.Int32
	store.Subscribe(func() { pokes.Add(1) })

	w, err := NewWatcher(store, dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("noise"), 0o600))

	// Give the event time to arrive; it must be filtered out.
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, pokes.Load())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := NewWatcher(store, filepath.Join(t.TempDir(), "does-not-exist"), logger.Nop())
	require.Error(t, err)
}

func TestWatcher_RunStopsOnCancel(t *testing.T) {
	store, dir := newTestStore(t)

	w, err := NewWatcher(store, dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}
