package components

import (
	"roomescape-api/internal/handler"
	"roomescape-api/internal/handler/api"
	"roomescape-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewTimeSlotHandler,
		api.NewThemeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
