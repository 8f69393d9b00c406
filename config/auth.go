package config

import "time"

const (
	defaultSessionTTL = 8 * time.Hour
	maxSessionTTL     = 24 * time.Hour
)

// AuthConfig groups session and access-policy configuration.
type AuthConfig struct {
	// SessionTTL is how long a browser session lives after sign-in. The
	// upstream credential is stored alongside the session, so the TTL should
	// not exceed the credential's own lifetime by much.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// TerminateOnMismatch clears the session when a signed-in user requests
	// the other role's area. The default treats the mismatch as
	// misnavigation and only redirects.
	TerminateOnMismatch bool `env:"AUTH_TERMINATE_ON_MISMATCH" envDefault:"false"`
}

// Sanitize applies guardrails to session configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
	if a.SessionTTL > maxSessionTTL {
		a.SessionTTL = maxSessionTTL
	}
}
