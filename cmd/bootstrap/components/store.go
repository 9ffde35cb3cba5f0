package components

import (
	"log/slog"

	"venue-booking/internal/infra/sessionstore"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewSessionStore,
		NewActionGuard,
	),
)

// NewSessionStore picks Redis when a client was configured and the in-memory
// store otherwise.
func NewSessionStore(client *redis.Client, cfg config.SessionConfig, clk clock.Clock, logger *slog.Logger) shared.SessionStore {
	if client == nil {
		return sessionstore.NewMemoryStore(cfg, clk)
	}
	return sessionstore.NewRedisStore(client, cfg, clk, logger)
}

func NewActionGuard(client *redis.Client, cfg config.SessionConfig, clk clock.Clock) shared.ActionGuard {
	if client == nil {
		return sessionstore.NewMemoryGuard(cfg, clk)
	}
	return sessionstore.NewRedisGuard(client, cfg)
}
