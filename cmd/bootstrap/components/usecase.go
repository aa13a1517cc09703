package components

import (
	"github.com/Antonio1491/parksys-sub007/internal/pkg/clock"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPaymentQueries,
		queries.NewDiscountQueries,
	),
)
