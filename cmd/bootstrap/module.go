package bootstrap

import (
	"github.com/erfanansari/reservation-app/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SnapshotModule,
	components.UseCaseModule,
	components.HandlerModule,
)
