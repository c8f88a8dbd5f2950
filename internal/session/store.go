package session

import (
	"encoding/json"
	"sync"

	"github.com/nroshal/tastebook/internal/logger"
	"github.com/nroshal/tastebook/models"
)

// Store is the single in-process authority on authentication state. It
// mirrors the persisted credential pair into an identity-stable snapshot and
// fans out payload-free change signals to subscribers.
//
// The application constructs exactly one Store in its composition root and
// injects it everywhere a consumer needs auth state; there is no package
// global.
type Store struct {
	creds CredentialStore
	log   *logger.Logger

	// mu guards the cache triple below. lastToken/lastUserRaw is the
	// last-observed raw pair; last is the snapshot derived from it.
	mu          sync.Mutex
	lastToken   *string
	lastUserRaw *string
	last        *Snapshot

	// empty is the fixed placeholder returned while no persistent layer is
	// reachable. A stable singleton so even the degraded path keeps the
	// identity guarantee.
	empty *Snapshot

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int
}

// NewStore builds a Store over creds. The cache starts at the empty
// placeholder and is populated lazily on the first read.
func NewStore(creds CredentialStore, log *logger.Logger) *Store {
	empty := &Snapshot{}
	return &Store{
		creds: creds,
		log:   log,
		last:  empty,
		empty: empty,
		subs:  make(map[int]func()),
	}
}

// Snapshot returns the current authentication snapshot.
//
// With no persistent layer available it returns the fixed empty placeholder.
// Otherwise it re-reads the raw pair; if the pair equals the last-observed
// one (value equality, absence included) the previously built snapshot is
// returned unchanged — the same pointer — so consumers can use pointer
// comparison as their "did anything change" test. Only a genuinely changed
// pair produces a new snapshot, with the user field parsed fail-soft.
func (s *Store) Snapshot() *Snapshot {
	if s.creds == nil || !s.creds.Available() {
		return s.empty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, userRaw := s.creds.ReadRaw()
	if strPtrEqual(token, s.lastToken) && strPtrEqual(userRaw, s.lastUserRaw) {
		return s.last
	}

	s.lastToken = token
	s.lastUserRaw = userRaw
	s.last = &Snapshot{
		Token: token,
		User:  safeParseUser(userRaw),
	}

	return s.last
}

// Token returns the current bearer token, or nil when logged out.
func (s *Store) Token() *string {
	return s.Snapshot().Token
}

// User returns the current cached profile, or nil.
func (s *Store) User() *models.User {
	return s.Snapshot().User
}

// Commit persists a successful authentication: both entries are written,
// the cache is refreshed synchronously to match (a read in the same flow
// never has to touch storage to see the fresh value), and the change signal
// fires. The eager self-refresh is required because the external watcher
// channel reports other processes' writes, not this one's.
func (s *Store) Commit(token string, user models.User) {
	if s.creds == nil || !s.creds.Available() {
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		// models.User always marshals; guard anyway so a future field
		// cannot turn a login into a panic.
		s.log.Error().Err(err).Msg("failed to serialize user record, committing token only")
		raw = nil
	}
	userRaw := string(raw)

	s.creds.WriteToken(token)
	s.creds.WriteUser(userRaw)

	s.mu.Lock()
	userCopy := user
	s.lastToken = &token
	s.lastUserRaw = &userRaw
	s.last = &Snapshot{Token: &token, User: &userCopy}
	s.mu.Unlock()

	s.emit()
}

// SetUser replaces only the profile entry, keeping the current token. With
// no active session this is a silent no-op and no signal fires: a profile
// update cannot occur while logged out, but calling it must be safe.
func (s *Store) SetUser(user models.User) {
	if s.creds == nil || !s.creds.Available() {
		return
	}

	token, _ := s.creds.ReadRaw()
	if token == nil {
		return
	}

	s.Commit(*token, user)
}

// Clear logs the session out: both entries are removed, the cache is reset
// to a fresh empty snapshot (reference-distinct from whatever was cached
// before), and the change signal fires.
func (s *Store) Clear() {
	if s.creds == nil || !s.creds.Available() {
		return
	}

	s.creds.Clear()

	s.mu.Lock()
	s.lastToken = nil
	s.lastUserRaw = nil
	s.last = &Snapshot{}
	s.mu.Unlock()

	s.emit()
}

// Subscribe registers cb for change signals from both sources — local
// commits/clears and externally observed storage changes — and returns an
// idempotent unsubscribe. Callbacks receive no payload; they re-pull via
// [Store.Snapshot].
//
// With no persistent layer available Subscribe is a no-op returning an
// inert unsubscribe.
func (s *Store) Subscribe(cb func()) func() {
	if s.creds == nil || !s.creds.Available() {
		return func() {}
	}

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = cb
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Poke injects an externally observed storage change into the subscriber
// channel. Called by [Watcher]; subscribers re-pull and, thanks to snapshot
// identity, ignore pokes that turn out to be echoes of this process's own
// writes.
func (s *Store) Poke() {
	s.emit()
}

// emit invokes every current subscriber synchronously. The subscriber set
// is copied first so a callback may unsubscribe (itself or others) without
// deadlocking.
func (s *Store) emit() {
	s.subMu.Lock()
	cbs := make([]func(), 0, len(s.subs))
	for _, cb := range s.subs {
		cbs = append(cbs, cb)
	}
	s.subMu.Unlock()

	for _, cb := range cbs {
		cb()
	}
}
