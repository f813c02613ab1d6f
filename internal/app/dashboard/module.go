package dashboard_module

import (
	"go.uber.org/fx"

	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
	dashboard_http_handler "github.com/init-pkg/rework-tracker/internal/app/dashboard/transports/http"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

func Register() fx.Option {
	return fx.Provide(
		dashboard_service.New,
		httpx.AsRouter(dashboard_http_handler.New),
	)
}
