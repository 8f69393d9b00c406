package config

import "time"

// defaultAPITimeout bounds upstream calls when no timeout is configured.
const defaultAPITimeout = 10 * time.Second

// APIConfig contains connection settings for the upstream career-fair API,
// the external collaborator that owns authentication and event data.
type APIConfig struct {
	// BaseURL is the collaborator's root, e.g. "http://localhost:8080/career-fair".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/career-fair"`

	// Timeout bounds every upstream HTTP call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to upstream API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = defaultAPITimeout
	}
}
