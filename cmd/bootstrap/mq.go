package bootstrap

import (
	"context"
	"log/slog"

	"field-booking/internal/infra/mq"
	"field-booking/internal/infra/notify"
	"field-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a nil publisher when RABBIT_URL is unset so the
// dispatcher only stores notifications.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.EventPublisher, error) {
	if cfg.MQ.URL == "" {
		logger.Info("RABBIT_URL not set, event publishing disabled")
		return nil, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
