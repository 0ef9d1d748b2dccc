package components

import (
	"parking-core/internal/handler"
	"parking-core/internal/handler/api"
	"parking-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLotHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		api.NewStatsHandler,
		api.NewExportHandler,
		api.NewJobHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			lot *api.LotHandler,
			reservation *api.ReservationHandler,
			admin *api.AdminHandler,
			stats *api.StatsHandler,
			export *api.ExportHandler,
			job *api.JobHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Lot:         lot,
				Reservation: reservation,
				Admin:       admin,
				Stats:       stats,
				Export:      export,
				Job:         job,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
