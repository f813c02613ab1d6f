package record_search_http_handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	record_search_service "github.com/init-pkg/rework-tracker/internal/app/record-search/service"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

type RecordSearchHttpHandler struct {
	service *record_search_service.RecordSearchService
}

func New(service *record_search_service.RecordSearchService) *RecordSearchHttpHandler {
	return &RecordSearchHttpHandler{service}
}

func (this *RecordSearchHttpHandler) Register(mainApp *fiber.App) {
	mainApp.Get("/records/search", this.search)
}

func (this *RecordSearchHttpHandler) search(c fiber.Ctx) error {
	q := dtos.RecordSearchQuery{Q: c.Query("q")}
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil {
			return httpx.BadRequest(c, errors.New("limit must be a number"))
		}
		q.Limit = n
	}

	if !this.service.Enabled() {
		return httpx.Error(c, "SearchDisabled", errors.New("record search is not configured"))
	}
	out, e := this.service.Search(c.Context(), q.Q, q.Limit)
	if e != nil {
		return httpx.Error(c, "Internal", e)
	}
	return c.JSON(fiber.Map{"query": q, "results": out})
}
