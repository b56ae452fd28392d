package components

import (
	"github.com/erfanansari/reservation-app/internal/pkg/clock"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewScheduleUseCase,
	),
)
