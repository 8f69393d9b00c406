package ports

// Package ports defines interfaces (hexagonal ports) for auth and upstream
// API behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"errors"
	"sort"
	"strings"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
)

// ErrInvalidCredentials is returned when the upstream API explicitly rejects
// a login attempt. It is recoverable: the UI shows inline field errors.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries per-field validation messages returned by the
// upstream API (e.g. on registration or event creation). It is recoverable:
// the UI re-renders the form with the messages attached to their fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Credentials are the inputs for a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Registration are the inputs for creating a new student account upstream.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Authenticator exchanges credentials for an upstream bearer token.
type Authenticator interface {
	// Authenticate submits credentials to the external collaborator and
	// returns the opaque credential string on success. An explicit rejection
	// is reported as ErrInvalidCredentials; any other failure is wrapped.
	Authenticate(ctx context.Context, creds Credentials) (string, error)

	// Register creates a new account. Upstream field-level rejections are
	// reported as a *ValidationError.
	Register(ctx context.Context, reg Registration) error
}

// SessionStore persists and retrieves browser sessions. The stored record is
// the atomic (credential, identity) pair; Save and Delete are the only
// mutations and each acts on the whole record.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
