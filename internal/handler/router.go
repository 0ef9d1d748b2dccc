package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"parking-core/internal/domain/user"
	"parking-core/internal/handler/api"
	"parking-core/internal/handler/middleware"
	"parking-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Lot         *api.LotHandler
	Reservation *api.ReservationHandler
	Admin       *api.AdminHandler
	Stats       *api.StatsHandler
	Export      *api.ExportHandler
	Job         *api.JobHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/me", Handler: h.Auth.UpdateMe},
			})
		}

		member := apiGroup.Group("")
		member.Use(authMiddleware.RequireAuth())
		{
			addRoutes(member, []route{
				{Method: http.MethodGet, Path: "/lots", Handler: h.Lot.List},
				{Method: http.MethodGet, Path: "/lots/:id", Handler: h.Lot.Get},
				{Method: http.MethodGet, Path: "/lots/:id/available-spots", Handler: h.Lot.AvailableSpots},

				{Method: http.MethodPost, Path: "/reserve/:lot_id", Handler: h.Reservation.Reserve},
				{Method: http.MethodPost, Path: "/parked-in/:reservation_id", Handler: h.Reservation.ParkIn},
				{Method: http.MethodPost, Path: "/release/:reservation_id", Handler: h.Reservation.Release},
				{Method: http.MethodPost, Path: "/end-session", Handler: h.Reservation.EndSession},
				{Method: http.MethodGet, Path: "/reservations/active", Handler: h.Reservation.Active},
				{Method: http.MethodGet, Path: "/reservations/history", Handler: h.Reservation.History},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Reservation.Dashboard},

				{Method: http.MethodPost, Path: "/reservations/export", Handler: h.Export.ExportMine},
				{Method: http.MethodGet, Path: "/exports/:filename", Handler: h.Export.Download},
				{Method: http.MethodGet, Path: "/jobs/:id", Handler: h.Job.Status},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Stats.Overview},
				{Method: http.MethodGet, Path: "/analytics", Handler: h.Stats.Analytics},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Stats.Revenue},
				{Method: http.MethodPost, Path: "/reports/monthly", Handler: h.Stats.MonthlyReport},
				{Method: http.MethodPost, Path: "/reports/export", Handler: h.Export.ExportAll},
				{Method: http.MethodGet, Path: "/reports", Handler: h.Export.Reports},

				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPost, Path: "/users/:id/toggle-status", Handler: h.Admin.ToggleUserStatus},

				{Method: http.MethodPost, Path: "/lots", Handler: h.Admin.CreateLot},
				{Method: http.MethodPut, Path: "/lots/:id", Handler: h.Admin.UpdateLot},
				{Method: http.MethodDelete, Path: "/lots/:id", Handler: h.Admin.DeleteLot},
				{Method: http.MethodPost, Path: "/lots/:id/spots", Handler: h.Admin.AddSpot},
				{Method: http.MethodDelete, Path: "/lots/:id/spots", Handler: h.Admin.RemoveSpots},

				{Method: http.MethodDelete, Path: "/parking-spots/:id", Handler: h.Admin.DeleteSpot},
				{Method: http.MethodGet, Path: "/parking-spots/:id/reservation", Handler: h.Admin.SpotReservation},
				{Method: http.MethodPost, Path: "/parking-spots/:id/override-status", Handler: h.Admin.OverrideStatus},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: h.Admin.CancelBooking},
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
