package session

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/nroshal/tastebook/internal/logger"
)

// Watcher bridges credential writes made by other processes into the
// store's subscriber channel. It is the second, external signal source next
// to the store's own emit on commit/clear; the two are deliberately kept
// separate because the writer must not depend on the file-system event for
// its own writes.
//
// Unlike a browser storage event, a file-system notification also fires for
// this process's own writes. The echo is delivered as a regular poke and
// neutralized downstream: the writer refreshed its cache synchronously, so
// re-pulling subscribers see the same snapshot pointer and skip their
// update.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	log     *logger.Logger
}

// NewWatcher watches the state directory for changes to the two credential
// entries. Returns an error if the directory cannot be watched; callers
// treat the watcher as optional and run without cross-process signaling in
// that case.
func NewWatcher(store *Store, stateDir string, log *logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(stateDir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{store: store, watcher: fsw, log: log}, nil
}

// Run delivers pokes until ctx is canceled. Blocks; start it on its own
// goroutine. The underlying watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isCredentialEntry(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug().Str("entry", filepath.Base(event.Name)).Str("op", event.Op.String()).
				Msg("credential entry changed on disk")
			w.store.Poke()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("credential watcher error")
		}
	}
}

func isCredentialEntry(path string) bool {
	base := filepath.Base(path)
	return base == tokenEntry || base == userEntry
}
