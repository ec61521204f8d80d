package bootstrap

import (
	"context"

	"field-booking/internal/infra/monitoring"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/obs"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		func() prometheus.Gatherer { return prometheus.DefaultGatherer },
		monitoring.NewMetrics,
	),
	fx.Invoke(RegisterTracer),
)

func RegisterTracer(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := obs.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})

	return nil
}
