package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		switch r.URL.Path {
		case "/auth/v1/token":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["password"] == "wrong" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  signedTestToken(t, "u1", time.Now().Add(time.Hour)),
				"refresh_token": "refresh-1",
				"expires_in":    3600,
				"user":          map[string]string{"id": "u1", "email": "a@x.com"},
			})
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		case "/auth/v1/user":
			assert.Equal(t, http.MethodPut, r.Method)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("{}"))
		case "/auth/v1/verify":
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  signedTestToken(t, "u1", time.Now().Add(time.Hour)),
				"refresh_token": "recovery-refresh",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestClientSignInAndOut(t *testing.T) {
	srv, _ := newTestAuthServer(t)
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	client := NewClient(srv.URL, "anon-key", store)
	ctx := context.Background()

	var events []Event
	sub := client.OnStateChange(func(ev Event, _ *Session) {
		events = append(events, ev)
	})
	defer sub.Unsubscribe()

	session, err := client.SignInWithPassword(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, session.AccessToken, client.AccessToken())

	persisted, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted, "session persisted across restarts")

	require.NoError(t, client.SignOut(ctx))
	assert.Nil(t, client.Session())
	assert.Equal(t, "", client.AccessToken())

	persisted, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted, "sign-out clears the persisted session")

	assert.Equal(t, []Event{EventSignedIn, EventSignedOut}, events)
}

func TestClientSignInErrorIsVerbatim(t *testing.T) {
	srv, _ := newTestAuthServer(t)
	client := NewClient(srv.URL, "anon-key", nil)

	_, err := client.SignInWithPassword(context.Background(), "a@x.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Invalid login credentials", err.Error())
	assert.Nil(t, client.Session())
}

func TestClientRefreshesExpiredSession(t *testing.T) {
	srv, paths := newTestAuthServer(t)
	client := NewClient(srv.URL, "anon-key", nil)

	client.setSession(&Session{
		AccessToken:  "stale",
		RefreshToken: "refresh-0",
		ExpiresAt:    time.Now().Add(-time.Minute).Unix(),
	})

	var refreshed bool
	sub := client.OnStateChange(func(ev Event, _ *Session) {
		if ev == EventTokenRefreshed {
			refreshed = true
		}
	})
	defer sub.Unsubscribe()

	session := client.Session()
	require.NotNil(t, session)
	assert.False(t, session.Expired())
	assert.True(t, refreshed)
	assert.Contains(t, (*paths)[0], "grant_type=refresh_token")
}

func TestClientRecoverSessionFromToken(t *testing.T) {
	srv, _ := newTestAuthServer(t)
	client := NewClient(srv.URL, "anon-key", nil)

	var recovery bool
	sub := client.OnStateChange(func(ev Event, _ *Session) {
		if ev == EventPasswordRecovery {
			recovery = true
		}
	})
	defer sub.Unsubscribe()

	session, err := client.RecoverSessionFromToken(context.Background(), "otp-123", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "recovery-refresh", session.RefreshToken)
	assert.True(t, recovery)
	assert.NotNil(t, client.Session(), "recovery establishes the session the reset form waits for")

	require.NoError(t, client.UpdatePassword(context.Background(), "newpassword"))
}

func TestAdminClientUnconfigured(t *testing.T) {
	client := NewAdminClient("https://demo.example.co", "")
	require.Nil(t, client)

	_, err := client.CreateIdentity(context.Background(), "j@x.com", nil)
	assert.ErrorIs(t, err, ErrAdminUnavailable)
}

func TestAdminClientCreateIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, true, body["email_confirm"])

		json.NewEncoder(w).Encode(map[string]string{"id": "ident-1", "email": "j@x.com"})
	}))
	defer srv.Close()

	client := NewAdminClient(srv.URL, "service-key")
	identity, err := client.CreateIdentity(context.Background(), "j@x.com", map[string]any{"role": "member"})

	require.NoError(t, err)
	assert.Equal(t, "ident-1", identity.ID)
}
