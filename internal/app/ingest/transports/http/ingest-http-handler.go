package ingest_http_handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

type IngestHttpHandler struct {
	service app.IngestService
}

func New(service app.IngestService) *IngestHttpHandler {
	return &IngestHttpHandler{service}
}

func (this *IngestHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/datasets")

	app.Post("", this.upload)
	app.Get("", this.info)
	app.Delete("", this.clear)
}

func (this *IngestHttpHandler) upload(c fiber.Ctx) error {
	fh, err := httpx.UploadedFile(c)
	if err != nil {
		return httpx.BadRequest(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return httpx.BadRequest(c, err)
	}
	defer f.Close()

	out, e := this.service.Ingest(c.Context(), fh.Filename, fh.Size, f)
	return respond(c, out, e)
}

func (this *IngestHttpHandler) info(c fiber.Ctx) error {
	return c.JSON(this.service.Info())
}

func (this *IngestHttpHandler) clear(c fiber.Ctx) error {
	out, e := this.service.Clear(c.Context())
	return respond(c, out, e)
}

func respond(c fiber.Ctx, out *dtos.IngestOutcome, e error) error {
	if out == nil {
		if e == nil {
			e = errors.New("no outcome")
		}
		return httpx.Error(c, "Internal", e)
	}
	return c.Status(httpx.StatusForKind(out.Kind)).JSON(out)
}
