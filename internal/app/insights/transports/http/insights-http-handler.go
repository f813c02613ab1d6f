package insights_http_handler

import (
	"github.com/gofiber/fiber/v3"

	dashboard_http_handler "github.com/init-pkg/rework-tracker/internal/app/dashboard/transports/http"
	insights_service "github.com/init-pkg/rework-tracker/internal/app/insights/service"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

type InsightsHttpHandler struct {
	service *insights_service.InsightsService
}

func New(service *insights_service.InsightsService) *InsightsHttpHandler {
	return &InsightsHttpHandler{service}
}

func (this *InsightsHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/insights")

	app.Get("", this.insights)
	app.Get("/health", this.health)
}

func (this *InsightsHttpHandler) insights(c fiber.Ctx) error {
	out, e := this.service.Insights(c.Context(), dashboard_http_handler.ReadQuery(c))
	if e != nil {
		return httpx.BadRequest(c, e)
	}
	return c.JSON(out)
}

func (this *InsightsHttpHandler) health(c fiber.Ctx) error {
	provider, ok := this.service.Health(c.Context())
	return c.JSON(fiber.Map{"provider": provider, "healthy": ok})
}
