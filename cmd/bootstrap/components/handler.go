package components

import (
	"wanderlust-booking/internal/handler"
	"wanderlust-booking/internal/handler/api"
	"wanderlust-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewListingHandler,
		api.NewAccountHandler,
		handler.NewHandlers,
		middleware.NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
