package auth

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the auth service's view of the signed-in user. The id doubles
// as the profile row key.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the opaque credential pair issued by the auth service. The
// access token is a JWT signed by the service; this application inspects its
// claims but never verifies or mints tokens.
type Session struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in,omitempty"`
	ExpiresAt    int64    `json:"expires_at,omitempty"` // unix seconds
	User         Identity `json:"user"`
}

// normalize fills ExpiresAt and the user id from whatever the response or
// the persisted file actually carried, falling back to the token claims.
func (s *Session) normalize() {
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Unix() + s.ExpiresIn
	}
	if s.ExpiresAt != 0 && s.User.ID != "" {
		return
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return
	}
	if s.ExpiresAt == 0 {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Unix()
		}
	}
	if s.User.ID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			s.User.ID = sub
		}
	}
}

// Expired reports whether the access token has passed (or is within a small
// margin of) its expiry.
func (s *Session) Expired() bool {
	if s.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= s.ExpiresAt-expiryMarginSeconds
}

const expiryMarginSeconds = 30

// SessionStore persists the session across restarts, the way the original
// client keeps it in browser storage.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (st *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.normalize()
	return &s, nil
}

func (st *SessionStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o600)
}

func (st *SessionStore) Clear() error {
	err := os.Remove(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
