package bootstrap

import (
	"log/slog"

	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/identity"
	"venue-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// RemoteModule exposes the single remote API client under every gateway
// port the use cases depend on.
var RemoteModule = fx.Module("remote",
	fx.Provide(
		fx.Annotate(
			NewRemoteClient,
			fx.As(new(shared.AccountGateway)),
			fx.As(new(shared.VenueGateway)),
			fx.As(new(shared.BookingGateway)),
			fx.As(new(shared.PaymentGateway)),
			fx.As(new(shared.NotificationGateway)),
		),
	),
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			identity.NewDecoder,
			fx.As(new(shared.TokenDecoder)),
		),
	),
)

func NewRemoteClient(cfg config.Config, logger *slog.Logger) *remote.Client {
	return remote.NewClient(cfg.Remote, logger)
}
