package components

import (
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/usecase"
	"institut-booking/internal/usecase/commands"
	"institut-booking/internal/usecase/queries"

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
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAppointmentQueries,
		queries.NewUserQueries,
		queries.NewAdminQueries,
		fx.Annotate(
			queries.NewSlotQueries,
			fx.ParamTags(`name:"display_slots"`, ``),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAdminCommands,
		fx.Annotate(
			commands.NewBookingCommands,
			fx.ParamTags(``, ``, ``, ``, `name:"confirm_slots"`, ``, ``),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
