package record_search_http_handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/models"
	record_search_service "github.com/init-pkg/rework-tracker/internal/app/record-search/service"
	"github.com/init-pkg/rework-tracker/internal/config"
)

type emptyDataset struct{}

func (emptyDataset) Snapshot() models.Snapshot { return models.Snapshot{} }

func newApp() *fiber.App {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := record_search_service.New(&config.Config{}, log, nil, emptyDataset{})
	app := fiber.New()
	New(svc).Register(app)
	return app
}

func TestSearchDisabled(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/records/search?q=label", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSearchBadLimit(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/records/search?q=label&limit=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
