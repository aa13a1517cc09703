package bootstrap

import (
	"log/slog"

	"github.com/Antonio1491/parksys-sub007/internal/handler/middleware"
	"github.com/Antonio1491/parksys-sub007/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	return logger.GetSlogLogger()
}
