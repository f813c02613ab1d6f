package httpx

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/dtos"
)

var ErrNoFile = errors.New(`multipart field "file" is required`)

// StatusForKind maps a failure kind to its HTTP status.
func StatusForKind(kind string) int {
	switch kind {
	case "":
		return http.StatusOK
	case "FileTooLarge":
		return http.StatusRequestEntityTooLarge
	case "UnsupportedFormat":
		return http.StatusUnsupportedMediaType
	case "NoDataSheetFound", "MissingDateColumn", "EmptyResult":
		return http.StatusUnprocessableEntity
	case "IngestInProgress":
		return http.StatusConflict
	case "SearchDisabled":
		return http.StatusServiceUnavailable
	case "BadRequest":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Error(c fiber.Ctx, kind string, err error) error {
	return c.Status(StatusForKind(kind)).JSON(dtos.ErrorResponse{Error: err.Error(), Kind: kind})
}

func BadRequest(c fiber.Ctx, err error) error {
	return Error(c, "BadRequest", err)
}

// UploadedFile returns the "file" part of a multipart form.
func UploadedFile(c fiber.Ctx) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return nil, ErrNoFile
	}
	return fh, nil
}

// Router is implemented by every HTTP handler; bootstrap mounts all of them.
type Router interface {
	Register(app *fiber.App)
}

// AsRouter annotates a handler constructor for the routes group.
func AsRouter(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(Router)),
		fx.ResultTags(`group:"routes"`),
	)
}
