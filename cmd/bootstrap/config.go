package bootstrap

import (
	"github.com/Antonio1491/parksys-sub007/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
