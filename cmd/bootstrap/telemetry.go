package bootstrap

import (
	"context"

	"parking-core/internal/infra/telemetry"
	"parking-core/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
	// Nothing depends on the provider directly; invoking it installs the global tracer
	fx.Invoke(func(*telemetry.Provider) {}),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: provider.Shutdown,
	})

	return provider, nil
}
