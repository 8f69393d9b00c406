package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/campuskit/careerfair-ui/config"
	"github.com/campuskit/careerfair-ui/internal/adapters/careerfair"
	redisadapter "github.com/campuskit/careerfair-ui/internal/adapters/redis"
	"github.com/campuskit/careerfair-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth   *service.AuthService
	Events *service.EventService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the upstream API adapter and the session store into the
// application services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	apiClient, err := careerfair.NewClient(careerfair.Config{
		BaseURL: deps.Config.API.BaseURL,
		Timeout: deps.Config.API.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create career-fair client: %w", err)
	}

	sessions := redisadapter.NewSessionStore(deps.RedisClient)

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:        apiClient,
		Sessions:   sessions,
		SessionTTL: deps.Config.Auth.SessionTTL,
	})
	events := service.NewEventService(apiClient)

	return ServiceContainer{Auth: auth, Events: events}, nil
}
