package bootstrap

import (
	"log/slog"

	"venue-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(loadConfig),
	ConfigSections,
)

// ConfigSections hands each component only its own part of config.Config.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.SessionConfig { return cfg.Session },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
)

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	slog.Info("configuration loaded",
		"remote", cfg.Remote.BaseURL,
		"redis_sessions", cfg.Redis.UsesRedis(),
		"require_payment", cfg.Booking.RequirePayment,
	)
	return cfg, nil
}
