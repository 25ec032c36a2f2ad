package components

import (
	"staymarket/internal/handler"
	"staymarket/internal/handler/api"
	"staymarket/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewSettlementHandler,
		api.NewLedgerHandler,
		api.NewQuotaHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
