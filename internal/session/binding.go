package session

import "sync"

// Binding ties one consumer to the store with the pull+push protocol. On
// every change signal it re-pulls the snapshot and invokes the render
// callback only when the pointer differs from the last one delivered, so
// consumers whose state did not actually change do no work.
type Binding struct {
	store *Store

	mu     sync.Mutex
	last   *Snapshot
	render func(*Snapshot)

	unsubscribe func()
	closeOnce   sync.Once
}

// Bind subscribes render to the store. The callback is invoked from
// whichever goroutine emits the change signal; render implementations that
// touch single-threaded state (like a TUI program) must hand off
// accordingly. The initial snapshot is pulled immediately but not delivered
// through render; read it via [Binding.Current].
func Bind(store *Store, render func(*Snapshot)) *Binding {
	b := &Binding{
		store:  store,
		render: render,
	}
	b.last = store.Snapshot()
	b.unsubscribe = store.Subscribe(b.tick)
	return b
}

// Current returns the last snapshot this binding has observed. Stable
// between change signals.
func (b *Binding) Current() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Close detaches the binding from the store. Safe to call more than once.
func (b *Binding) Close() {
	b.closeOnce.Do(b.unsubscribe)
}

func (b *Binding) tick() {
	snap := b.store.Snapshot()

	b.mu.Lock()
	if snap == b.last {
		b.mu.Unlock()
		return
	}
	b.last = snap
	render := b.render
	b.mu.Unlock()

	if render != nil {
		render(snap)
	}
}
