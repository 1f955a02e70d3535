package session

// session holds the one durable credential slot on the admin machine.
// The token is written only by login/logout and read before every API call.

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zalando/go-keyring"
)

const (
	serviceName = "bookadmin"
	tokenKey    = "auth_token"
)

// TokenStore abstracts where the bearer token lives so the client can be
// handed a test double instead of reaching into ambient storage.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// KeyringStore keeps the token in the OS keyring.
type KeyringStore struct{}

func (KeyringStore) Load() (string, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (KeyringStore) Save(token string) error {
	return keyring.Set(serviceName, tokenKey, token)
}

func (KeyringStore) Clear() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

type storedCredentials struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore keeps the token in a JSON file (default ~/.bookadmin/credentials.json)
// for machines without a usable keyring, e.g. headless boxes and CI.
type FileStore struct {
	Path string
}

// DefaultCredentialsPath returns the state-file location under the home directory.
func DefaultCredentialsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bookadmin", "credentials.json")
}

func (s FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var creds storedCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", err
	}
	return creds.Token, nil
}

func (s FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(storedCredentials{Token: token, SavedAt: time.Now()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0600)
}

func (s FileStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Open builds a Session backed by the named store kind ("keyring" or "file").
func Open(storeKind string) (*Session, error) {
	switch storeKind {
	case "keyring":
		return New(KeyringStore{}), nil
	case "file":
		return New(FileStore{Path: DefaultCredentialsPath()}), nil
	default:
		return nil, fmt.Errorf("unknown credential store %q", storeKind)
	}
}

// Session is the explicitly-injected authentication context for the API
// client. It caches nothing: every Token call reads the store, so a logout
// from another process is picked up on the next request.
type Session struct {
	mu    sync.Mutex
	store TokenStore
}

func New(store TokenStore) *Session {
	return &Session{store: store}
}

// Token returns the stored bearer token and whether one is present.
// A store read failure is treated as "no token": the request then goes out
// with the dev bypass marker and the server decides.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, err := s.store.Load()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Login persists the token obtained from /auth/login.
func (s *Session) Login(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(token)
}

// Logout clears the credential slot. It does not touch navigation state.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear()
}

// Identity describes who the stored token says we are. Filled from the JWT
// claims without signature verification; only the server can actually verify,
// this is for display in `bookadmin auth status`.
type Identity struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim has passed.
func (id *Identity) Expired() bool {
	return !id.ExpiresAt.IsZero() && time.Now().After(id.ExpiresAt)
}

// Identity parses the stored token's claims. Returns an error when no token
// is stored or the token is not a well-formed JWT.
func (s *Session) Identity() (*Identity, error) {
	token, ok := s.Token()
	if !ok {
		return nil, errors.New("not logged in")
	}

	claims := jwt.MapClaims{}
	// ParseUnverified: we only display the claims, we never trust them.
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("stored token is not a valid JWT: %w", err)
	}

	id := &Identity{}
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}
