package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "officehub-cli"
	keyToken       = "token"
	keyProfile     = "profile"

	sessionDirName  = "officehub"
	sessionFileName = "session.json"
)

// Backend persists the two session keys (token and serialized profile).
// Write must store both or neither; Read reports ok=false when no session
// has been stored.
type Backend interface {
	Read() (token string, profile []byte, ok bool, err error)
	Write(token string, profile []byte) error
	Delete() error
}

// FileBackend stores the session as a JSON document under the user's config
// directory. This is the default backend: it survives restarts and is
// trivially inspectable.
type FileBackend struct {
	path string
}

type sessionFile struct {
	Token   string          `json:"token"`
	Profile json.RawMessage `json:"profile"`
}

// DefaultSessionPath returns ~/.config/officehub/session.json.
func DefaultSessionPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", sessionDirName, sessionFileName), nil
}

// NewFileBackend creates a file backend at the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Read() (string, []byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, false, nil
		}
		return "", nil, false, fmt.Errorf("failed to read session file: %w", err)
	}

	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return "", nil, false, fmt.Errorf("failed to parse session file: %w", err)
	}

	if sf.Token == "" || len(sf.Profile) == 0 {
		return "", nil, false, nil
	}
	return sf.Token, sf.Profile, true, nil
}

func (f *FileBackend) Write(token string, profile []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sessionFile{Token: token, Profile: profile}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session file: %w", err)
	}

	// The file holds a bearer token, keep it private to the user.
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (f *FileBackend) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// KeyringBackend stores the session in the OS keychain/credential manager,
// one entry per key.
type KeyringBackend struct {
	service string
}

// NewKeyringBackend creates a keyring backend using the default service name.
func NewKeyringBackend() *KeyringBackend {
	return &KeyringBackend{service: keyringService}
}

func (k *KeyringBackend) Read() (string, []byte, bool, error) {
	token, err := keyring.Get(k.service, keyToken)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil, false, nil
		}
		return "", nil, false, fmt.Errorf("failed to load token from keyring: %w", err)
	}

	profile, err := keyring.Get(k.service, keyProfile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil, false, nil
		}
		return "", nil, false, fmt.Errorf("failed to load profile from keyring: %w", err)
	}

	return token, []byte(profile), true, nil
}

func (k *KeyringBackend) Write(token string, profile []byte) error {
	if err := keyring.Set(k.service, keyToken, token); err != nil {
		return fmt.Errorf("failed to save token to keyring: %w", err)
	}
	if err := keyring.Set(k.service, keyProfile, string(profile)); err != nil {
		// Do not leave a token behind with no profile.
		_ = keyring.Delete(k.service, keyToken)
		return fmt.Errorf("failed to save profile to keyring: %w", err)
	}
	return nil
}

func (k *KeyringBackend) Delete() error {
	for _, key := range []string{keyToken, keyProfile} {
		if err := keyring.Delete(k.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("failed to delete %s from keyring: %w", key, err)
		}
	}
	return nil
}

// MemoryBackend is an in-memory backend for tests.
type MemoryBackend struct {
	token   string
	profile []byte
	stored  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Read() (string, []byte, bool, error) {
	if !m.stored {
		return "", nil, false, nil
	}
	return m.token, m.profile, true, nil
}

func (m *MemoryBackend) Write(token string, profile []byte) error {
	m.token = token
	m.profile = append([]byte(nil), profile...)
	m.stored = true
	return nil
}

func (m *MemoryBackend) Delete() error {
	m.token = ""
	m.profile = nil
	m.stored = false
	return nil
}
