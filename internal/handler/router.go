package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staymarket/internal/handler/api"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	settlementHandler *api.SettlementHandler,
	ledgerHandler *api.LedgerHandler,
	quotaHandler *api.QuotaHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, settlementHandler, ledgerHandler, quotaHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	settlementHandler *api.SettlementHandler,
	ledgerHandler *api.LedgerHandler,
	quotaHandler *api.QuotaHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodGet, Path: "/:id/refund-preview", Handler: bookingHandler.GetRefundPreview},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: settlementHandler.AcceptBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleHost)}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: settlementHandler.RejectBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleHost)}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: settlementHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: settlementHandler.CompleteBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleHost)}},
				{Method: http.MethodPost, Path: "/:id/payout", Handler: settlementHandler.ProcessPayout,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}

		accounts := apiGroup.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodGet, Path: "/:id/balance", Handler: ledgerHandler.GetBalance},
				{Method: http.MethodGet, Path: "/:id/history", Handler: ledgerHandler.GetHistory},
			})
		}

		hosts := apiGroup.Group("/hosts")
		hosts.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleHost))
		{
			addRoutes(hosts, []route{
				{Method: http.MethodPost, Path: "/:id/slots", Handler: quotaHandler.PurchaseSlots},
				{Method: http.MethodGet, Path: "/:id/quota", Handler: quotaHandler.GetQuota},
				{Method: http.MethodPost, Path: "/:id/listings/activate", Handler: quotaHandler.ActivateListing},
				{Method: http.MethodPost, Path: "/:id/listings/deactivate", Handler: quotaHandler.DeactivateListing},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/fee-percent", Handler: adminHandler.GetFeePercent},
				{Method: http.MethodPut, Path: "/fee-percent", Handler: adminHandler.SetFeePercent},
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
