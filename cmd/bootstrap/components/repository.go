package components

import (
	"github.com/Antonio1491/parksys-sub007/internal/infra/readstore"
	"github.com/Antonio1491/parksys-sub007/internal/infra/writerepo"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) commands.TxBeginner {
			return pool
		},
		// Read-side stores
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(commands.ItemRepository)),
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Write-side repositories
		fx.Annotate(
			writerepo.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
		),
		fx.Annotate(
			writerepo.NewFinalizationRepository,
			fx.As(new(commands.FinalizationRepository)),
		),
		fx.Annotate(
			writerepo.NewRegistrationRepository,
			fx.As(new(commands.RegistrationRepository)),
		),
	),
)
