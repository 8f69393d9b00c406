package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.Authenticator = (*MockAuthenticator)(nil)
	_ ports.SessionStore  = (*MemorySessionStore)(nil)
)

// MockAuthenticator simulates the upstream career-fair API for tests with a
// fixed credential table.
type MockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, creds ports.Credentials) (string, error)
	RegisterFunc     func(ctx context.Context, reg ports.Registration) error

	// Accounts maps email to the token issued for it. When AuthenticateFunc
	// is nil, any password is accepted for a known email.
	Accounts map[string]string

	// Registered collects registrations when RegisterFunc is nil.
	Registered []ports.Registration

	callCount int
}

// NewMockAuthenticator creates a MockAuthenticator with no known accounts.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{Accounts: make(map[string]string)}
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, creds ports.Credentials) (string, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, creds)
	}

	m.callCount++
	token, ok := m.Accounts[creds.Email]
	if !ok {
		return "", fmt.Errorf("login %d: %w", m.callCount, ports.ErrInvalidCredentials)
	}
	return token, nil
}

func (m *MockAuthenticator) Register(ctx context.Context, reg ports.Registration) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, reg)
	}
	m.Registered = append(m.Registered, reg)
	return nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are stored, for assertions on store mutation.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
