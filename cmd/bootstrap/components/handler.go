package components

import (
	"github.com/erfanansari/reservation-app/internal/handler"
	"github.com/erfanansari/reservation-app/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
