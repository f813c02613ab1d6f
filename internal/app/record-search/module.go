package record_search_module

import (
	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/app"
	record_search_service "github.com/init-pkg/rework-tracker/internal/app/record-search/service"
	record_search_http_handler "github.com/init-pkg/rework-tracker/internal/app/record-search/transports/http"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(
			record_search_service.New,
			fx.As(fx.Self()),
			fx.As(new(app.RecordIndexer)),
		),
		httpx.AsRouter(record_search_http_handler.New),
	)
}
