package dashboard_http_handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/nova/errs"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

type dashboardReader interface {
	Build(q dtos.DashboardQuery) (*dashboard_service.Payload, errs.Error)
	Records(q dtos.DashboardQuery) ([]models.CanonicalRecord, errs.Error)
}

type DashboardHttpHandler struct {
	service dashboardReader
}

func New(service *dashboard_service.DashboardService) *DashboardHttpHandler {
	return &DashboardHttpHandler{service}
}

func (this *DashboardHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Get("/dashboard", this.dashboard)
	mainApp.Get("/records", this.records)
}

// ReadQuery collects the filter controls. Locations are comma separated.
func ReadQuery(c fiber.Ctx) dtos.DashboardQuery {
	q := dtos.DashboardQuery{
		From:        c.Query("from"),
		To:          c.Query("to"),
		Granularity: c.Query("granularity"),
		Sort:        c.Query("sort"),
	}
	if l := c.Query("locations"); l != "" {
		q.Locations = []string{l}
	}
	return q
}

func (this *DashboardHttpHandler) dashboard(c fiber.Ctx) error {
	out, e := this.service.Build(ReadQuery(c))
	if e != nil {
		return httpx.BadRequest(c, e)
	}
	return c.JSON(out)
}

func (this *DashboardHttpHandler) records(c fiber.Ctx) error {
	out, e := this.service.Records(ReadQuery(c))
	if e != nil {
		return httpx.BadRequest(c, e)
	}
	return c.JSON(fiber.Map{"records": out, "count": len(out)})
}
