package components

import (
	"institut-booking/internal/handler"
	"institut-booking/internal/handler/api"
	"institut-booking/internal/handler/middleware"
	"institut-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewSlotHandler,
		api.NewAppointmentHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
