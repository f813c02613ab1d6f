package ingest_module

import (
	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/app"
	ingest_service "github.com/init-pkg/rework-tracker/internal/app/ingest/service"
	ingest_http_handler "github.com/init-pkg/rework-tracker/internal/app/ingest/transports/http"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			ingest_service.NewSession,
			func(s *ingest_service.Session) app.DatasetReader { return s },
			ingest_service.NewPipeline,
			fx.Annotate(
				ingest_service.New,
				fx.As(fx.Self()),
				fx.As(new(app.IngestService)),
			),
			httpx.AsRouter(ingest_http_handler.New),
		),
		fx.Invoke(func(lc fx.Lifecycle, svc *ingest_service.IngestService) {
			lc.Append(fx.StartHook(svc.Hydrate))
		}),
	)
}
