package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/init-pkg/rework-tracker/internal/config"
	"github.com/init-pkg/rework-tracker/internal/events"
	"github.com/init-pkg/rework-tracker/internal/httpx"
	"github.com/init-pkg/rework-tracker/internal/logger"
	"github.com/init-pkg/rework-tracker/internal/storage"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.MustLoad,
			logger.New,
			newFiberApp,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		storage.Register(),
		events.Register(),
		fx.Invoke(
			fx.Annotate(mountRoutes, fx.ParamTags(``, `group:"routes"`)),
			serve,
		),
	)
}

func newFiberApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: cfg.Http.BodyLimit,
	})
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return app
}

func mountRoutes(app *fiber.App, routers []httpx.Router) {
	for _, r := range routers {
		r.Register(app)
	}
}

func serve(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger, app *fiber.App) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Http.Addr)
			if err != nil {
				return err
			}
			go func() {
				if err := app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil && !errors.Is(err, net.ErrClosed) {
					log.Error("http server stopped", "err", err)
				}
			}()
			log.Info("http server listening", "addr", ln.Addr().String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
