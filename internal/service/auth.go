package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/campuskit/careerfair-ui/internal/domain/auth"
	"github.com/campuskit/careerfair-ui/internal/ports"
)

// defaultSessionTTL bounds a browser session when no explicit duration is configured.
const defaultSessionTTL = 8 * time.Hour

var errSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API        ports.Authenticator
	Sessions   ports.SessionStore
	SessionTTL time.Duration
}

// AuthService orchestrates the login/logout lifecycle: it exchanges
// credentials with the upstream collaborator, decodes the returned token
// into an identity, and keeps the session store as the single source of
// truth for the (credential, identity) pair.
type AuthService struct {
	api        ports.Authenticator
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		api:        opts.API,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// LoginInput groups the credentials submitted by the sign-in form.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the session created by a successful login. The
// session's Role doubles as the navigation hint for the caller.
type LoginResult struct {
	Session domainauth.Session
}

// Login authenticates against the upstream API and, on success, atomically
// replaces the browser's session with the new (credential, identity) pair.
//
// An upstream rejection surfaces as ports.ErrInvalidCredentials. Every other
// failure (network, unexpected status, undecodable token) is wrapped and the
// store is left untouched: a failed login never mutates the session.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ports.ErrInvalidCredentials
	}

	token, err := s.api.Authenticate(ctx, ports.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	// The token is only trusted for navigation if it decodes to a known role.
	identity, err := domainauth.DecodeToken(token)
	if err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}

	session := domainauth.Session{
		ID:        uuid.New().String(),
		Token:     token,
		UserID:    identity.UserID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Role:      identity.Role,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &LoginResult{Session: session}, nil
}

// Register relays an account registration to the upstream API. Field-level
// rejections come back as a *ports.ValidationError for the form to render.
func (s *AuthService) Register(ctx context.Context, reg ports.Registration) error {
	if err := s.api.Register(ctx, reg); err != nil {
		var verr *ports.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// GetSession restores the session for the given id. A missing record, an
// expired one, or a stored credential that no longer decodes to the same
// identity all yield an error the caller treats as "anonymous"; stale
// records are removed on the way out.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	// Identity is present iff the credential still decodes to it. A record
	// whose token rotted or drifted from its stored identity is cleared
	// rather than trusted.
	identity, err := domainauth.DecodeToken(session.Token)
	if err != nil || identity.UserID != session.UserID || identity.Role != session.Role {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, fmt.Errorf("clear undecodable session: %w", deleteErr)
		}
		return nil, fmt.Errorf("session credential no longer trusted: %w", domainauth.ErrDecode)
	}

	return &session, nil
}

// Logout removes a session. Calling it for an empty or already-absent id is
// a no-op, so a double logout observes the same state as a single one.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
