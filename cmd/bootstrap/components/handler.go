package components

import (
	"github.com/Antonio1491/parksys-sub007/internal/handler"
	"github.com/Antonio1491/parksys-sub007/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		api.NewDiscountHandler,
	),
	fx.Invoke(handler.NewRouter),
)
