// Package session persists the client's auth state between runs: the opaque
// bearer token, the serialized user profile, and the remember-me flag, as
// keyed string values in a local file. The login/logout flow is the single
// writer; every authenticated operation reads the token through here.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// ErrNotAuthenticated is returned when no token is stored or the stored token
// has outlived its TTL. Callers surface it by routing the user to login.
var ErrNotAuthenticated = errors.New("session: not logged in (run 'scoretool login')")

// Storage keys, shared with the mobile client this backend serves.
const (
	keyToken      = "userToken"
	keyUserInfo   = "userInfo"
	keyRememberMe = "rememberMe"
)

// DefaultTokenTTL is how long a stored token is trusted before the user is
// asked to log in again.
const DefaultTokenTTL = 30 * 24 * time.Hour

// Store reads and writes the persisted session state.
type Store struct {
	path     string
	clock    clockwork.Clock
	tokenTTL time.Duration
}

// Option adjusts a Store.
type Option func(*Store)

// WithClock substitutes the wall clock, for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithTokenTTL overrides DefaultTokenTTL. Zero disables expiry.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Store) { s.tokenTTL = ttl }
}

// NewStore opens a store backed by the file at path. The file need not exist
// yet; it is created on the first save.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		clock:    clockwork.NewRealClock(),
		tokenTTL: DefaultTokenTTL,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// DefaultPath returns the conventional state file location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("DefaultPath: %w", err)
	}
	return filepath.Join(dir, "sportsynz", "session.json"), nil
}

type state struct {
	Values        map[string]string `json:"values"`
	TokenIssuedAt time.Time         `json:"tokenIssuedAt"`
}

func (s *Store) load() (*state, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &state{Values: map[string]string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if st.Values == nil {
		st.Values = map[string]string{}
	}
	return &st, nil
}

func (s *Store) save(st *state) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// SaveLogin records a successful login: token, serialized profile, and the
// remember-me preference.
func (s *Store) SaveLogin(token string, user scoreboard.User, remember bool) error {
	st, err := s.load()
	if err != nil {
		return fmt.Errorf("SaveLogin: %w", err)
	}
	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("SaveLogin: failed to serialize profile: %w", err)
	}
	st.Values[keyToken] = token
	st.Values[keyUserInfo] = string(profile)
	if remember {
		st.Values[keyRememberMe] = "true"
	} else {
		st.Values[keyRememberMe] = "false"
	}
	st.TokenIssuedAt = s.clock.Now()
	if err := s.save(st); err != nil {
		return fmt.Errorf("SaveLogin: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or ErrNotAuthenticated when none is
// stored or the stored one has expired.
func (s *Store) Token() (string, error) {
	st, err := s.load()
	if err != nil {
		return "", fmt.Errorf("Token: %w", err)
	}
	token := st.Values[keyToken]
	if token == "" {
		return "", ErrNotAuthenticated
	}
	if s.tokenTTL > 0 && s.clock.Since(st.TokenIssuedAt) > s.tokenTTL {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// User returns the stored profile, or ErrNotAuthenticated when none is stored.
func (s *Store) User() (*scoreboard.User, error) {
	st, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("User: %w", err)
	}
	raw := st.Values[keyUserInfo]
	if raw == "" {
		return nil, ErrNotAuthenticated
	}
	var user scoreboard.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("User: failed to parse stored profile: %w", err)
	}
	return &user, nil
}

// RememberMe reports the stored remember-me preference.
func (s *Store) RememberMe() bool {
	st, err := s.load()
	if err != nil {
		return false
	}
	return st.Values[keyRememberMe] == "true"
}

// Clear wipes every stored value. Used by logout.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("Clear: %w", err)
	}
	return nil
}
