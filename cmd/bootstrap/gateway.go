package bootstrap

import (
	"github.com/Antonio1491/parksys-sub007/internal/infra/gateway"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/config"
	"github.com/Antonio1491/parksys-sub007/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.GatewayConfig {
			return cfg.Gateway
		},
		fx.Annotate(
			gateway.NewClient,
			fx.As(new(commands.IntentGateway)),
		),
	),
)
