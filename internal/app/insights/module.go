package insights_module

import (
	"go.uber.org/fx"

	insights_service "github.com/init-pkg/rework-tracker/internal/app/insights/service"
	insights_http_handler "github.com/init-pkg/rework-tracker/internal/app/insights/transports/http"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

func Register() fx.Option {
	return fx.Provide(
		insights_service.NewRemote,
		insights_service.New,
		httpx.AsRouter(insights_http_handler.New),
	)
}
