package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/config"
)

type Noop struct{}

func (Noop) Publish(context.Context, models.DatasetEvent) error { return nil }
func (Noop) Close() error                                       { return nil }

// New connects to RabbitMQ when a url is configured. Without one, or when the broker is
// unreachable at startup, events are dropped.
func New(cfg *config.Config, log *slog.Logger) app.EventPublisher {
	rc := cfg.Clients.RabbitMQ
	if rc.Url == "" {
		return Noop{}
	}

	pub, err := DialAmqp(rc.Url, rc.Exchange)
	if err != nil {
		log.Warn("event publishing disabled", "error", err)
		return Noop{}
	}
	log.Info("publishing dataset events", "exchange", rc.Exchange)
	return pub
}

func Register() fx.Option {
	return fx.Provide(
		func(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) app.EventPublisher {
			pub := New(cfg, log)
			lc.Append(fx.StopHook(pub.Close))
			return pub
		},
	)
}
