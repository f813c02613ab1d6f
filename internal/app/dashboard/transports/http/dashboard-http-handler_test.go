package dashboard_http_handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/models"
	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
)

type staticDataset models.Snapshot

func (s staticDataset) Snapshot() models.Snapshot { return models.Snapshot(s) }

func newApp() *fiber.App {
	snap := models.Snapshot{
		Goals: models.DefaultGoals(),
		Records: []models.CanonicalRecord{
			{HoldDate: "2024-01-05", Location: "North", CasesProduced: 100, CasesReworked: 20, CostRework: 100, Disposition: "Rework"},
			{HoldDate: "2024-03-01", Location: "South", CasesProduced: 50, Disposition: "Release"},
		},
	}
	svc := dashboard_service.New(slog.New(slog.NewTextHandler(io.Discard, nil)), staticDataset(snap))
	a := fiber.New()
	New(svc).Register(a)
	return a
}

func TestDashboard(t *testing.T) {
	res, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/dashboard?locations=North&granularity=day", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	summary := out["summary"].(map[string]any)
	assert.EqualValues(t, 100, summary["totalHoldUnits"])
	assert.EqualValues(t, 20, summary["reworkPct"])
}

func TestDashboardBadDate(t *testing.T) {
	res, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/dashboard?from=yesterday", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRecords(t *testing.T) {
	res, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/records?from=2024-02-01", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out struct {
		Records []models.CanonicalRecord `json:"records"`
		Count   int                      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "South", out.Records[0].Location)
}
