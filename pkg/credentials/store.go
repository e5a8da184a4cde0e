// Package credentials persists the session state between runs: the bearer
// access token, the refresh token, and a snapshot of the current user record.
//
// The file is treated as copy-on-write — Save replaces it whole, Clear
// removes it. Nothing ever mutates it partially, so a half-written session
// cannot exist.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/labelsight/labelsight/app/models"
)

// Credentials is the serialized session snapshot.
type Credentials struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	CurrentUser  *models.User `json:"current_user,omitempty"`
}

// Store binds Credentials to a JSON file on disk.
type Store struct {
	mu    sync.RWMutex
	path  string
	creds Credentials
}

// Open loads the store from path. A missing file is a valid empty session.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("credentials: read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.creds); err != nil {
		return nil, fmt.Errorf("credentials: decode %s: %w", path, err)
	}
	return s, nil
}

// Save replaces the stored credentials with creds, in memory and on disk.
func (s *Store) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("credentials: encode: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("credentials: create %s: %w", dir, err)
		}
	}

	// Tokens only; keep the file out of reach of other users.
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("credentials: write %s: %w", s.path, err)
	}

	s.creds = creds
	return nil
}

// Clear removes the credentials file and empties the in-memory session.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("credentials: remove %s: %w", s.path, err)
	}
	return nil
}

// Token returns the current access token ("" when logged out). Shaped to be
// used directly as a rest.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.AccessToken
}

// RefreshToken returns the stored refresh token.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.RefreshToken
}

// CurrentUser returns the cached user record, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.CurrentUser
}

// SetCurrentUser replaces only the user snapshot, persisting the whole file.
func (s *Store) SetCurrentUser(u *models.User) error {
	s.mu.RLock()
	creds := s.creds
	s.mu.RUnlock()

	creds.CurrentUser = u
	return s.Save(creds)
}

// IsAdmin reports whether the cached user record carries the ADMIN role.
// This gates display only; the backend is the enforcement point and the
// snapshot may be stale.
func (s *Store) IsAdmin() bool {
	u := s.CurrentUser()
	return u != nil && u.IsAdmin()
}

// TokenClaims parses the stored access token without verifying its
// signature — the client has no key material and only uses claims for
// display (expiry, subject). Returns an error when no token is stored or it
// is not a JWT.
func (s *Store) TokenClaims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, errors.New("credentials: no access token stored")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("credentials: parse token: %w", err)
	}
	return claims, nil
}
