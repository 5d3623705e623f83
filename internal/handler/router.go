package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wanderlust-booking/internal/handler/api"
	"wanderlust-booking/internal/handler/middleware"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Listing *api.ListingHandler
	Account *api.AccountHandler
}

func NewHandlers(b *api.BookingHandler, l *api.ListingHandler, a *api.AccountHandler) Handlers {
	return Handlers{Booking: b, Listing: l, Account: a}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *observability.Metrics, limiter *middleware.RateLimiter, h Handlers) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, cfg, metrics, limiter, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *observability.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(metrics))
	}
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, metrics *observability.Metrics, limiter *middleware.RateLimiter, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/destinations", Handler: h.Listing.ListDestinations},
			{Method: http.MethodGet, Path: "/destinations/:id", Handler: h.Listing.GetDestination},
			{Method: http.MethodGet, Path: "/hotels", Handler: h.Listing.ListHotels},
			{Method: http.MethodGet, Path: "/hotels/:id", Handler: h.Listing.GetHotel},
			{Method: http.MethodGet, Path: "/tours", Handler: h.Listing.ListTours},
			{Method: http.MethodGet, Path: "/tours/:id", Handler: h.Listing.GetTour},
			{Method: http.MethodGet, Path: "/reviews/:itemId", Handler: h.Listing.ListReviews},
		})

		sessionScoped := apiGroup.Group("")
		sessionScoped.Use(middleware.SessionMiddleware(cfg.Cookie))

		bookings := sessionScoped.Group("/bookings")
		{
			limited := []gin.HandlerFunc{limiter.Limit()}
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: h.Booking.Quote, Mw: limited},
				{Method: http.MethodPost, Path: "/selection", Handler: h.Booking.Select, Mw: limited},
				{Method: http.MethodGet, Path: "/current", Handler: h.Booking.Current},
				{Method: http.MethodDelete, Path: "/current", Handler: h.Booking.Clear},
				{Method: http.MethodPost, Path: "/wizard/next", Handler: h.Booking.Next},
				{Method: http.MethodPost, Path: "/wizard/back", Handler: h.Booking.Back},
				{Method: http.MethodPost, Path: "/wizard/submit", Handler: h.Booking.Submit, Mw: limited},
				{Method: http.MethodGet, Path: "/confirmation", Handler: h.Booking.Confirmation},
			})
		}

		account := sessionScoped.Group("/account")
		{
			addRoutes(account, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Account.Bookings},
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
