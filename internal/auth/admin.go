package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrAdminUnavailable means the privileged interface is not configured.
// Callers surface it with remediation text instead of crashing: adding a
// member simply cannot create its login identity until the key is set.
var ErrAdminUnavailable = errors.New("privileged admin interface is not configured; set the service key or create the login identity manually")

// AdminClient talks to the separately-keyed administrative interface that
// can create auth identities outside normal self-registration. The service
// key bypasses row-level security, so this client is used for exactly one
// operation and nothing else.
type AdminClient struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewAdminClient returns nil when no service key is configured; callers
// must treat a nil client as ErrAdminUnavailable.
func NewAdminClient(endpoint, serviceKey string) *AdminClient {
	if serviceKey == "" {
		return nil
	}
	return &AdminClient{
		baseURL:    strings.TrimSuffix(endpoint, "/"),
		serviceKey: serviceKey,
		httpClient: http.DefaultClient,
	}
}

// CreateIdentity provisions a confirmed login identity for a new member.
// The metadata travels with the identity so the service can build the
// profile row (role, sacco id) on its side.
func (a *AdminClient) CreateIdentity(ctx context.Context, email string, metadata map[string]any) (*Identity, error) {
	if a == nil {
		return nil, ErrAdminUnavailable
	}
	payload, err := json.Marshal(map[string]any{
		"email":         email,
		"email_confirm": true,
		"user_metadata": metadata,
	})
	if err != nil {
		return nil, err
	}

	endpoint := a.baseURL + "/auth/v1/admin/users"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", a.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ae := &authError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, ae)
		return nil, fmt.Errorf("create identity: %w", ae)
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("parse created identity: %w", err)
	}
	return &identity, nil
}
