package components

import (
	"lodgekeeper/internal/handler"
	"lodgekeeper/internal/handler/api"
	"lodgekeeper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRefundHandler,
		api.NewBlackoutHandler,
		api.NewDoorCodeHandler,
		api.NewCalendarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
