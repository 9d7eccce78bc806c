// Package rest implements the repository interfaces against the hosted data
// service's generic table API: select/insert/update/delete per table, with
// equality filters and timestamp ordering, scoped by row-level security.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"saccoflow/internal/logger"

	"github.com/google/uuid"
)

// TokenFunc supplies the caller's current access token, or "" when no
// session exists. Reads without a session still carry the public key and
// come back filtered (usually empty) by row-level security.
type TokenFunc func() string

// Client speaks the table API. One instance is shared by all repositories.
type Client struct {
	baseURL    string
	apiKey     string
	token      TokenFunc
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string, token TokenFunc) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimSuffix(endpoint, "/"),
		apiKey:     apiKey,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// apiError carries the service's error message verbatim; dashboards surface
// it to the user unchanged on writes.
type apiError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("data service returned status %d", e.StatusCode)
}

// IsNotFound reports whether err denotes a missing row.
func IsNotFound(err error) bool {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.StatusCode == http.StatusNotFound || ae.StatusCode == http.StatusNotAcceptable
	}
	return false
}

// From starts a query against one table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

type Query struct {
	client  *Client
	table   string
	filters []string
	order   string
	single  bool
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, fmt.Sprintf("%s=eq.%s", column, url.QueryEscape(value)))
	return q
}

// OrderDesc orders results by a column, newest first.
func (q *Query) OrderDesc(column string) *Query {
	q.order = fmt.Sprintf("order=%s.desc", column)
	return q
}

// Single asks the service for exactly one row; zero or many is an error.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

func (q *Query) queryString(withSelect bool) string {
	parts := make([]string, 0, len(q.filters)+2)
	if withSelect {
		parts = append(parts, "select=*")
	}
	parts = append(parts, q.filters...)
	if q.order != "" {
		parts = append(parts, q.order)
	}
	return strings.Join(parts, "&")
}

// Select fetches matching rows into dest (a pointer to slice, or to a struct
// when Single was requested).
func (q *Query) Select(ctx context.Context, dest any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.queryString(true))
	headers := map[string]string{}
	if q.single {
		headers["Accept"] = "application/vnd.pgrst.object+json"
	}
	body, err := q.client.do(ctx, http.MethodGet, endpoint, nil, headers)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%s: parse response: %w", q.table, err)
	}
	return nil
}

// Insert creates a row and decodes the authoritative representation the
// service returns into dest when dest is non-nil.
func (q *Query) Insert(ctx context.Context, row any, dest any) error {
	payload, err := json.Marshal([]any{row})
	if err != nil {
		return fmt.Errorf("%s: encode row: %w", q.table, err)
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table)
	headers := map[string]string{"Prefer": "return=representation"}
	body, err := q.client.do(ctx, http.MethodPost, endpoint, bytes.NewReader(payload), headers)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil || len(rows) == 0 {
		return fmt.Errorf("%s: parse inserted row", q.table)
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return fmt.Errorf("%s: parse inserted row: %w", q.table, err)
	}
	return nil
}

// Update patches the matching rows with the given fields.
func (q *Query) Update(ctx context.Context, fields any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%s: encode fields: %w", q.table, err)
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.queryString(false))
	_, err = q.client.do(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload), nil)
	return err
}

// Delete removes the matching rows.
func (q *Query) Delete(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, q.queryString(false))
	_, err := q.client.do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
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
		ae := &apiError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, ae)
		logger.DataServiceResult(method, endpoint, ae)
		return nil, ae
	}
	logger.DataServiceResult(method, endpoint, nil)
	return respBody, nil
}
