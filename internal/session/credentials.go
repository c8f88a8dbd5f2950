package session

import (
	"os"
	"path/filepath"

	"github.com/nroshal/tastebook/internal/logger"
)

// Names of the two credential entries inside the state directory. Each entry
// is an independent file so an external writer updating one never corrupts
// the other.
const (
	tokenEntry = "token"
	userEntry  = "user"
)

//go:generate mockgen -source=credentials.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore is durable, process-shared persistence of the two
// credential entries. Implementations never fail outward: reads of absent
// or unreadable entries yield nil, and writes absorb their errors (logging
// them), degrading to a consistent logged-out-looking state.
//
// The store itself notifies nobody. Local-change signaling is the snapshot
// cache's job, external-change signaling is the watcher's.
type CredentialStore interface {
	// ReadRaw returns the raw token and serialized user entries, nil for
	// whichever is absent.
	ReadRaw() (token, userRaw *string)

	// WriteToken persists the bearer token entry.
	WriteToken(token string)

	// WriteUser persists the serialized user entry.
	WriteUser(userRaw string)

	// Clear removes both entries.
	Clear()

	// Available reports whether a persistent layer is actually backing the
	// store. When false, every operation is a no-op and reads yield nil.
	Available() bool
}

// FileCredentialStore keeps the two entries as plain files in a state
// directory. All client processes pointed at the same directory share one
// session, the file-system analog of origin-scoped browser storage.
type FileCredentialStore struct {
	dir       string
	available bool
	log       *logger.Logger
}

// NewFileCredentialStore creates the state directory if needed and returns
// a store over it. A store over an empty or uncreatable directory is
// returned in detached mode rather than failing: the client still runs,
// just permanently logged out.
func NewFileCredentialStore(dir string, log *logger.Logger) *FileCredentialStore {
	s := &FileCredentialStore{dir: dir, log: log}

	if dir == "" {
		log.Warn().Msg("no state directory configured, credentials will not persist")
		return s
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("cannot create state directory, credentials will not persist")
		return s
	}

	s.available = true
	return s
}

// Available implements [CredentialStore].
func (s *FileCredentialStore) Available() bool {
	return s.available
}

// ReadRaw implements [CredentialStore]. Absent entries yield nil; read
// failures are logged and also yield nil.
func (s *FileCredentialStore) ReadRaw() (token, userRaw *string) {
	return s.readEntry(tokenEntry), s.readEntry(userEntry)
}

// WriteToken implements [CredentialStore].
func (s *FileCredentialStore) WriteToken(token string) {
	s.writeEntry(tokenEntry, token)
}

// WriteUser implements [CredentialStore].
func (s *FileCredentialStore) WriteUser(userRaw string) {
	s.writeEntry(userEntry, userRaw)
}

// Clear implements [CredentialStore]. Removing an already-absent entry is
// not an error.
func (s *FileCredentialStore) Clear() {
	if !s.available {
		return
	}
	for _, name := range []string{tokenEntry, userEntry} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("entry", name).Msg("failed to remove credential entry")
		}
	}
}

func (s *FileCredentialStore) readEntry(name string) *string {
	if !s.available {
		return nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("entry", name).Msg("failed to read credential entry")
		}
		return nil
	}

	v := string(data)
	return &v
}

func (s *FileCredentialStore) writeEntry(name, value string) {
	if !s.available {
		return
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(value), 0o600); err != nil {
		s.log.Warn().Err(err).Str("entry", name).Msg("failed to write credential entry")
	}
}
