package bootstrap

import (
	"parking-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// infra is shared by every process.
var infra = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// Module is the API server. River workers run in-process only when JOBS_EMBEDDED is set.
var Module = fx.Options(
	infra,
	components.JobsModule,
	components.HandlerModule,
)

// WorkerModule runs the River workers without the HTTP surface.
var WorkerModule = fx.Options(
	infra,
	components.WorkerModule,
)
