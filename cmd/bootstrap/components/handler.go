package components

import (
	"venue-booking/internal/handler"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewWizardHandler,
		api.NewOwnerBookingsHandler,
		api.NewGuestBookingsHandler,
		middleware.NewSessionMiddleware,
		middleware.NewRateLimiter,
	),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Logger    *middleware.Logger
	Session   *middleware.SessionMiddleware
	RateLimit *middleware.RateLimiter

	SessionHandler *api.SessionHandler
	Catalog        *api.CatalogHandler
	Booking        *api.BookingHandler
	Wizard         *api.WizardHandler
	Owner          *api.OwnerBookingsHandler
	Guest          *api.GuestBookingsHandler
}

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Session: p.SessionHandler,
			Catalog: p.Catalog,
			Booking: p.Booking,
			Wizard:  p.Wizard,
			Owner:   p.Owner,
			Guest:   p.Guest,
		},
		handler.Middlewares{
			Logger:    p.Logger,
			Session:   p.Session,
			RateLimit: p.RateLimit,
		},
	)
}
