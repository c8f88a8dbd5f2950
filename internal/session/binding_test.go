package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinding_RendersOnChange(t *testing.T) {
	store, _ := newTestStore(t)

	var delivered []*Snapshot
	binding := Bind(store, func(s *Snapshot) { delivered = append(delivered, s) })
	defer binding.Close()

	store.Commit("abc123", testUser())

	require.Len(t, delivered, 1)
	assert.Same(t, store.Snapshot(), delivered[0])
	assert.Same(t, delivered[0], binding.Current())
}

// A signal that re-pulls an unchanged snapshot must not reach the render
// callback — that is the whole point of identity-stable snapshots.
func TestBinding_SkipsRenderWhenSnapshotUnchanged(t *testing.T) {
	store, _ := newTestStore(t)

	var renders int
	binding := Bind(store, func(*Snapshot) { renders++ })
	defer binding.Close()

	store.Poke()
	store.Poke()

	assert.Zero(t, renders)
}

func TestBinding_CurrentBeforeAnySignal(t *testing.T) {
	store, _ := newTestStore(t)
	store.Commit("abc123", testUser())

	binding := Bind(store, nil)
	defer binding.Close()

	assert.Same(t, store.Snapshot(), binding.Current())
}

func TestBinding_CloseDetaches(t *testing.T) {
	store, _ := newTestStore(t)

	var renders int
	binding := Bind(store, func(*Snapshot) { renders++ })

	binding.Close()
	assert.NotPanics(t, binding.Close)

	store.Commit("abc123", testUser())
	assert.Zero(t, renders)
}

func TestBinding_SequentialChanges(t *testing.T) {
	store, _ := newTestStore(t)

	var delivered []*Snapshot
	binding := Bind(store, func(s *Snapshot) { delivered = append(delivered, s) })
	defer binding.Close()

	store.Commit("abc123", testUser())
	store.Clear()

	require.Len(t, delivered, 2)
	assert.True(t, delivered[0].LoggedIn())
	assert.False(t, delivered[1].LoggedIn())
	assert.NotSame(t, delivered[0], delivered[1])
}
