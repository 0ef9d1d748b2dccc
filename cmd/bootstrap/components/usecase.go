package components

import (
	"parking-core/internal/domain/billing"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/password"
	"parking-core/internal/usecase"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	billing.NewHourlyCalculator,
	password.NewBcryptHasher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAllocationCommands,
		commands.NewLotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLotQueries,
		queries.NewReservationQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
