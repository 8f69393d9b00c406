package careerfair

// Package careerfair is the HTTP adapter for the external career-fair API,
// the collaborator that owns authentication and event data. The adapter
// performs at-most-once submission: requests are never retried, and context
// cancellation aborts an in-flight call.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/campuskit/careerfair-ui/internal/domain/model"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

// Compile-time conformance to the ports this adapter implements.
var (
	_ ports.Authenticator = (*Client)(nil)
	_ ports.EventsAPI     = (*Client)(nil)
)

// maxErrorBodyBytes bounds how much of an upstream error body we read.
const maxErrorBodyBytes = 64 << 10

// Config captures the upstream API connection settings.
type Config struct {
	// BaseURL is the collaborator's root, e.g. "http://localhost:8080/career-fair".
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the career-fair API. All privileged calls carry the
// session's bearer credential; the client never inspects the credential.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a career-fair API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("career-fair API base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: hc}, nil
}

// authResponse is the success body of POST /users/auth.
type authResponse struct {
	Token string `json:"token"`
}

// Authenticate submits credentials and returns the issued bearer token.
func (c *Client) Authenticate(ctx context.Context, creds ports.Credentials) (string, error) {
	payload := map[string]string{"email": creds.Email, "password": creds.Password}

	resp, err := c.post(ctx, "/users/auth", "", payload)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	defer closeBody(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", ports.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("authenticate: unexpected status %d", resp.StatusCode)
	}

	var body authResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("authenticate: decode response: %w", err)
	}
	if body.Token == "" {
		return "", errors.New("authenticate: response missing token")
	}
	return body.Token, nil
}

// Register creates a new account upstream. Per-field rejections come back as
// a *ports.ValidationError.
func (c *Client) Register(ctx context.Context, reg ports.Registration) error {
	resp, err := c.post(ctx, "/users/register", "", reg)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	if verr := decodeFieldErrors(resp); verr != nil {
		return verr
	}
	return fmt.Errorf("register: unexpected status %d", resp.StatusCode)
}

// ListEvents fetches all events visible to the credential.
func (c *Client) ListEvents(ctx context.Context, token string) ([]model.Event, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/events", token, nil)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("list events: unexpected status %d", resp.StatusCode)
	}

	var events []model.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("list events: decode response: %w", err)
	}
	return events, nil
}

// CreateEvent creates a new event upstream (201 on success).
func (c *Client) CreateEvent(ctx context.Context, token string, req model.CreateEventRequest) error {
	resp, err := c.post(ctx, "/events/add-event", token, req)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode == http.StatusCreated || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		return nil
	}
	if verr := decodeFieldErrors(resp); verr != nil {
		return verr
	}
	return fmt.Errorf("create event: unexpected status %d", resp.StatusCode)
}

// attendResponse is the success body of POST /events/attend/{id}.
type attendResponse struct {
	Message string `json:"message"`
}

// AttendEvent signs the student up for an event.
func (c *Client) AttendEvent(ctx context.Context, token string, eventID int64) (string, error) {
	path := "/events/attend/" + strconv.FormatInt(eventID, 10)
	resp, err := c.post(ctx, path, token, struct{}{})
	if err != nil {
		return "", fmt.Errorf("attend event %d: %w", eventID, err)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := decodeMessage(resp); msg != "" {
			return "", fmt.Errorf("attend event %d: %s", eventID, msg)
		}
		return "", fmt.Errorf("attend event %d: unexpected status %d", eventID, resp.StatusCode)
	}

	var body attendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("attend event %d: decode response: %w", eventID, err)
	}
	return body.Message, nil
}

func (c *Client) post(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, token, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// decodeFieldErrors parses the upstream validation body {field: [messages]}
// into a ValidationError. Returns nil when the body has no usable fields.
func decodeFieldErrors(resp *http.Response) *ports.ValidationError {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return nil
	}

	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err != nil || len(byField) == 0 {
		return nil
	}

	fields := make(map[string]string, len(byField))
	for field, messages := range byField {
		if len(messages) > 0 && messages[0] != "" {
			fields[field] = messages[0]
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ports.ValidationError{Fields: fields}
}

// decodeMessage extracts a {"message": ...} error body when present.
func decodeMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return ""
	}
	var body attendResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

func closeBody(resp *http.Response) {
	// Drain so the transport can reuse the connection.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
	_ = resp.Body.Close()
}
