package session

import (
	"encoding/json"
	"fmt"
)

// Profile holds the lightweight identity shown in the console. It is built
// at login time; the login endpoint only returns a token, so everything
// here is derived from what the user typed.
type Profile struct {
	Username string `json:"username"`
	RealName string `json:"realName"`
	Position string `json:"position"`
	Status   int    `json:"status"`
}

// Credential is the full session state: a normalized bearer token plus the
// profile it belongs to. A credential is either entirely present or entirely
// absent; there is no token-without-profile state.
type Credential struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Store is the single source of truth for session state. It keeps an
// in-memory snapshot and writes through to a Backend synchronously, so a
// process restart reproduces the same credential.
type Store struct {
	backend Backend
	current *Credential
}

// NewStore creates a store and loads any persisted credential from the
// backend. A persisted token without a parseable profile (or vice versa)
// counts as no session at all.
func NewStore(backend Backend) (*Store, error) {
	s := &Store{backend: backend}

	token, profileData, ok, err := backend.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted session: %w", err)
	}
	if !ok || token == "" || len(profileData) == 0 {
		return s, nil
	}

	var profile Profile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		// Half a session is no session. Drop it rather than carry a
		// token with no identity attached.
		_ = backend.Delete()
		return s, nil
	}

	s.current = &Credential{Token: token, Profile: profile}
	return s, nil
}

// SetSession stores a validated token and profile, replacing any prior
// session. The backend write happens before the in-memory snapshot updates,
// so a failed write leaves the previous session intact.
func (s *Store) SetSession(token string, profile Profile) error {
	profileData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.backend.Write(token, profileData); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = &Credential{Token: token, Profile: profile}
	return nil
}

// ClearSession removes the session. Clearing an absent session is a no-op.
func (s *Store) ClearSession() error {
	if err := s.backend.Delete(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	s.current = nil
	return nil
}

// CurrentSession returns a snapshot of the credential, or ok=false when
// anonymous. It never fails: read paths must not depend on storage health.
func (s *Store) CurrentSession() (Credential, bool) {
	if s.current == nil {
		return Credential{}, false
	}
	return *s.current, true
}
