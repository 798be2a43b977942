package bootstrap

import (
	"context"

	"bundlestay/internal/infra/events"
	"bundlestay/internal/pkg/config"
	"bundlestay/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewEventProducer,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventProducer(lc fx.Lifecycle, cfg config.Config) *events.Producer {
	producer := events.NewProducer(cfg.Kafka.Brokers)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
