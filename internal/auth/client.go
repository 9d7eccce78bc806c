// Package auth wraps the hosted service's authentication interface: password
// sign-in, opaque sessions with refresh, state-change subscriptions, password
// update, and recovery sessions established from emailed tokens.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"saccoflow/internal/logger"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	store      *SessionStore
	hub        *eventHub

	mu      sync.Mutex
	current *Session
}

// NewClient builds an auth client and restores any persisted session.
func NewClient(endpoint, apiKey string, store *SessionStore) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		store:      store,
		hub:        newEventHub(),
	}
	if store != nil {
		if s, err := store.Load(); err != nil {
			logger.Warn("Failed to restore persisted session", "error", err)
		} else {
			c.current = s
		}
	}
	return c
}

// authError carries the service's message verbatim. The service is not
// consistent about the field name, so all known spellings are tried.
type authError struct {
	StatusCode       int
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e *authError) Error() string {
	for _, m := range []string{e.ErrorDescription, e.Msg, e.Message} {
		if m != "" {
			return m
		}
	}
	return fmt.Sprintf("auth service returned status %d", e.StatusCode)
}

// SignInWithPassword exchanges credentials for a session. The service's
// error message is returned verbatim so the login form can display it.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	session, err := c.tokenRequest(ctx, "password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	c.setSession(session)
	c.hub.emit(EventSignedIn, session)
	return session, nil
}

// SignOut revokes the session server-side (best effort) and always clears
// local state, so a dead token cannot wedge the client in a signed-in view.
func (c *Client) SignOut(ctx context.Context) error {
	session := c.Session()
	if session != nil {
		endpoint := c.baseURL + "/auth/v1/logout"
		if _, err := c.do(ctx, http.MethodPost, endpoint, nil, session.AccessToken); err != nil {
			logger.Warn("Sign-out revocation failed", "error", err)
		}
	}
	c.setSession(nil)
	c.hub.emit(EventSignedOut, nil)
	return nil
}

// Session returns the current session, transparently refreshing an expired
// one. Returns nil when no usable session exists.
func (c *Client) Session() *Session {
	c.mu.Lock()
	session := c.current
	c.mu.Unlock()
	if session == nil {
		return nil
	}
	if !session.Expired() {
		return session
	}
	refreshed, err := c.Refresh(context.Background())
	if err != nil {
		logger.Warn("Session refresh failed, treating as signed out", "error", err)
		c.setSession(nil)
		return nil
	}
	return refreshed
}

// AccessToken is a repository TokenFunc: the bearer token for table calls.
func (c *Client) AccessToken() string {
	if s := c.Session(); s != nil {
		return s.AccessToken
	}
	return ""
}

// Refresh exchanges the refresh token for a new session.
func (c *Client) Refresh(ctx context.Context) (*Session, error) {
	c.mu.Lock()
	session := c.current
	c.mu.Unlock()
	if session == nil || session.RefreshToken == "" {
		return nil, fmt.Errorf("no session to refresh")
	}
	refreshed, err := c.tokenRequest(ctx, "refresh_token", map[string]string{
		"refresh_token": session.RefreshToken,
	})
	if err != nil {
		return nil, err
	}
	c.setSession(refreshed)
	c.hub.emit(EventTokenRefreshed, refreshed)
	return refreshed, nil
}

// UpdatePassword sets a new password for the signed-in identity.
func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	session := c.Session()
	if session == nil {
		return fmt.Errorf("no active session")
	}
	payload, _ := json.Marshal(map[string]string{"password": newPassword})
	endpoint := c.baseURL + "/auth/v1/user"
	_, err := c.do(ctx, http.MethodPut, endpoint, bytes.NewReader(payload), session.AccessToken)
	return err
}

// RecoverSessionFromToken redeems a recovery token from an emailed link,
// establishing the session the password-reset flow waits for.
func (c *Client) RecoverSessionFromToken(ctx context.Context, token, email string) (*Session, error) {
	payload, _ := json.Marshal(map[string]string{
		"type":  "recovery",
		"token": token,
		"email": email,
	})
	endpoint := c.baseURL + "/auth/v1/verify"
	body, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), "")
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse recovery session: %w", err)
	}
	session.normalize()
	c.setSession(&session)
	c.hub.emit(EventPasswordRecovery, &session)
	return &session, nil
}

// OnStateChange registers a listener for auth state changes.
func (c *Client) OnStateChange(fn func(Event, *Session)) *Subscription {
	return c.hub.add(fn)
}

func (c *Client) tokenRequest(ctx context.Context, grantType string, fields map[string]string) (*Session, error) {
	payload, _ := json.Marshal(fields)
	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=%s", c.baseURL, grantType)
	body, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), "")
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	session.normalize()
	return &session, nil
}

func (c *Client) setSession(s *Session) {
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	if c.store == nil {
		return
	}
	var err error
	if s == nil {
		err = c.store.Clear()
	} else {
		err = c.store.Save(s)
	}
	if err != nil {
		logger.Warn("Failed to persist session", "error", err)
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, bearer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	logger.DataServiceCall(method, endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DataServiceResult(method, endpoint, err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ae := &authError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, ae)
		logger.DataServiceResult(method, endpoint, ae)
		return nil, ae
	}
	logger.DataServiceResult(method, endpoint, nil)
	return respBody, nil
}
