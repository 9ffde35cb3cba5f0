package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Session *api.SessionHandler
	Catalog *api.CatalogHandler
	Booking *api.BookingHandler
	Wizard  *api.WizardHandler
	Owner   *api.OwnerBookingsHandler
	Guest   *api.GuestBookingsHandler
}

type Middlewares struct {
	Logger    *middleware.Logger
	Session   *middleware.SessionMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw.Session)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(mw.RateLimit.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessions *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessions.EnsureSession())
	{
		identified := sessions.RequireIdentity()
		owner := sessions.RequireRole(user.RoleOwner)

		sessionGroup := apiGroup.Group("/session")
		addRoutes(sessionGroup, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Session.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Session.Register},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Session.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Session.Me},
		})

		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.Load},
			{Method: http.MethodPost, Path: "/filter", Handler: h.Catalog.Filter},
			{Method: http.MethodPost, Path: "/more", Handler: h.Catalog.ShowMore},
			{Method: http.MethodGet, Path: "/venues/:id", Handler: h.Catalog.Venue},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/venues/:id/bookings", Handler: h.Booking.Request, Mw: []gin.HandlerFunc{identified}},
			{Method: http.MethodPost, Path: "/payments/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{identified}},
		})

		ownerGroup := apiGroup.Group("/owner")
		ownerGroup.Use(owner)
		{
			addRoutes(ownerGroup, []route{
				{Method: http.MethodGet, Path: "/wizard", Handler: h.Wizard.View},
				{Method: http.MethodPatch, Path: "/wizard", Handler: h.Wizard.Edit},
				{Method: http.MethodPost, Path: "/wizard/next", Handler: h.Wizard.Next},
				{Method: http.MethodPost, Path: "/wizard/back", Handler: h.Wizard.Back},
				{Method: http.MethodPost, Path: "/wizard/submit", Handler: h.Wizard.Submit},
				{Method: http.MethodDelete, Path: "/wizard", Handler: h.Wizard.Reset},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Owner.Load},
				{Method: http.MethodPost, Path: "/bookings/:id/accept", Handler: h.Owner.Accept},
				{Method: http.MethodPost, Path: "/bookings/:id/reject", Handler: h.Owner.Reject},
				{Method: http.MethodPost, Path: "/bookings/:id/pending", Handler: h.Owner.Revert},
			})
		}

		guest := apiGroup.Group("/guest")
		guest.Use(identified)
		{
			addRoutes(guest, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Guest.Load},
				{Method: http.MethodPost, Path: "/bookings/filter", Handler: h.Guest.Filter},
				{Method: http.MethodGet, Path: "/bookings/cancelled", Handler: h.Guest.Cancelled},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Guest.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
