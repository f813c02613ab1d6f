package insights_service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
	insights_client "github.com/init-pkg/rework-tracker/internal/clients/insights"
	"github.com/init-pkg/rework-tracker/internal/config"
)

type staticDataset models.Snapshot

func (s staticDataset) Snapshot() models.Snapshot { return models.Snapshot(s) }

var records = []models.CanonicalRecord{
	{HoldDate: "2024-01-05", Location: "North", CasesProduced: 100, CasesReworked: 20, CostRework: 100, Disposition: "Rework", RootCause: "Mislabel"},
	{HoldDate: "2024-01-06", Location: "South", CasesProduced: 100, CasesReworked: 0, CostScrap: 50, Disposition: "Scrap", RootCause: "Seal"},
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(provider, url, health string) *config.Config {
	cfg := &config.Config{}
	cfg.Clients.Insights.Provider = provider
	cfg.Clients.Insights.Url = url
	cfg.Clients.Insights.HealthUrl = health
	cfg.Clients.Insights.Timeout = 200 * time.Millisecond
	cfg.Clients.Insights.RequestsPerSec = 100
	return cfg
}

func newService(cfg *config.Config) *InsightsService {
	dash := dashboard_service.New(discard(), staticDataset(models.Snapshot{Records: records, Goals: models.DefaultGoals()}))
	return New(cfg, discard(), dash, NewRemote(cfg))
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(records)
	assert.Equal(t, 200, req.Metrics.TotalHoldUnits)
	assert.Equal(t, 20, req.Metrics.TotalItemsReworked)
	assert.InDelta(t, 10.0, req.Metrics.ReworkPercent, 1e-9)
	assert.InDelta(t, 50.0, req.Metrics.PercentScrapped, 1e-9)
	assert.Equal(t, "Mislabel", req.Metrics.TopRootCause)
	assert.Equal(t, "North", req.Metrics.TopLocation)
	assert.Equal(t, "Rework", req.Metrics.TopDisposition)
	assert.Contains(t, req.SummaryText, "200 hold units")
}

func TestLocalProvider(t *testing.T) {
	res, err := LocalProvider{}.Generate(context.Background(), BuildRequest(records))
	require.NoError(t, err)
	assert.Len(t, res.Insights, 3)
	assert.Equal(t, []string{"Mislabel", "North", "Rework"}, res.KeyPhrases)

	res, err = LocalProvider{}.Generate(context.Background(), BuildRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"No hold units in the selected range."}, res.Insights)
	assert.Empty(t, res.KeyPhrases)
}

func TestLocalProviderConfigured(t *testing.T) {
	res, e := newService(testConfig("local", "", "")).Insights(context.Background(), dtos.DashboardQuery{})
	require.Nil(t, e)
	assert.Equal(t, "local", res.Source)
	assert.Empty(t, res.Fallback)
}

func TestRemoteInsights(t *testing.T) {
	var got dtos.InsightsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			w.WriteHeader(http.StatusOK)
		case "/insights":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"insights":["a","b","c","d"],"keyPhrases":["mislabel"]}`))
		}
	}))
	defer srv.Close()

	res, e := newService(testConfig("http", srv.URL+"/insights", srv.URL+"/health")).Insights(context.Background(), dtos.DashboardQuery{})
	require.Nil(t, e)
	assert.Equal(t, "http", res.Source)
	assert.Equal(t, []string{"a", "b", "c"}, res.Insights)
	assert.Equal(t, []string{"mislabel"}, res.KeyPhrases)
	assert.Equal(t, 200, got.Metrics.TotalHoldUnits)
	assert.Equal(t, "Mislabel", got.Metrics.TopRootCause)
}

func TestRemoteFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/insights" {
				w.WriteHeader(http.StatusInternalServerError)
			}
		}},
		{"health down", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/insights" {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			}
		}},
		{"bad body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res, e := newService(testConfig("http", srv.URL+"/insights", srv.URL+"/health")).Insights(context.Background(), dtos.DashboardQuery{})
			require.Nil(t, e)
			assert.Equal(t, "local", res.Source)
			assert.NotEmpty(t, res.Fallback)
			assert.NotEmpty(t, res.Insights)
		})
	}
}

func TestRemoteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res, e := newService(testConfig("http", url+"/insights", "")).Insights(context.Background(), dtos.DashboardQuery{})
	require.Nil(t, e)
	assert.Equal(t, "local", res.Source)
}

func TestProbeIsNotCached(t *testing.T) {
	var up atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" && !up.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"insights":["remote"],"keyPhrases":[]}`))
	}))
	defer srv.Close()

	svc := newService(testConfig("http", srv.URL+"/insights", srv.URL+"/health"))

	res, _ := svc.Insights(context.Background(), dtos.DashboardQuery{})
	assert.Equal(t, "local", res.Source)

	up.Store(true)
	res, _ = svc.Insights(context.Background(), dtos.DashboardQuery{})
	assert.Equal(t, "http", res.Source)

	name, ok := svc.Health(context.Background())
	assert.Equal(t, "http", name)
	assert.True(t, ok)
}

func TestInsightsBadQuery(t *testing.T) {
	_, e := newService(testConfig("local", "", "")).Insights(context.Background(), dtos.DashboardQuery{From: "nope"})
	assert.NotNil(t, e)
}

func TestClientHealthWithoutEndpoint(t *testing.T) {
	c := insights_client.New(testConfig("http", "http://127.0.0.1:1/insights", ""))
	assert.True(t, c.Healthy(context.Background()))
	assert.Equal(t, "http", c.Name())
}
