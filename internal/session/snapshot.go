package session

import (
	"encoding/json"

	"github.com/nroshal/tastebook/models"
)

// Snapshot is an immutable point-in-time view of the authentication state.
// A nil Token means "not authenticated". User may be nil even when Token is
// present (authenticated, profile not yet loaded); consumers gate access on
// [Snapshot.LoggedIn] and treat missing profile fields as unknown.
//
// Snapshots must never be mutated after they are handed out: the identity
// guarantee of [Store.Snapshot] only holds if every consumer treats the
// pointed-to value as read-only.
type Snapshot struct {
	Token *string
	User  *models.User
}

// LoggedIn reports whether the snapshot carries a bearer token. The user
// record is deliberately not consulted.
func (s *Snapshot) LoggedIn() bool {
	return s != nil && s.Token != nil
}

// safeParseUser decodes a serialized user record. Absent or unparsable
// input yields nil: corrupted persisted state degrades to "no profile"
// instead of propagating an error.
func safeParseUser(raw *string) *models.User {
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(*raw), &u); err != nil {
		return nil
	}
	return &u
}

// strPtrEqual compares two optional strings by value, treating two nils as
// equal and nil/non-nil as different.
func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
