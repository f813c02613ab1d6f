package insights_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/internal/config"
)

// InsightsClient calls the external insights service.
type InsightsClient struct {
	url       string
	healthUrl string
	client    *http.Client
	limiter   *rate.Limiter
}

var _ app.ProbedInsightsProvider = &InsightsClient{}

func New(cfg *config.Config) *InsightsClient {
	ic := cfg.Clients.Insights

	limit := rate.Inf
	if ic.RequestsPerSec > 0 {
		limit = rate.Limit(ic.RequestsPerSec)
	}

	return &InsightsClient{
		url:       ic.Url,
		healthUrl: ic.HealthUrl,
		client:    &http.Client{Timeout: 30 * time.Second},
		limiter:   rate.NewLimiter(limit, 1),
	}
}

func (this *InsightsClient) Name() string {
	return "http"
}

// Generate posts the summary and metrics. Callers bound it with a context deadline.
func (this *InsightsClient) Generate(ctx context.Context, payload dtos.InsightsRequest) (*dtos.InsightsResponse, error) {
	if err := this.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limited: %w", err)
	}

	jsonData, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}

	req, e := http.NewRequestWithContext(ctx, http.MethodPost, this.url, bytes.NewBuffer(jsonData))
	if e != nil {
		return nil, e
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, e := this.client.Do(req)
	if e != nil {
		return nil, e
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("API error %d: %s", res.StatusCode, string(body))
	}

	var out dtos.InsightsResponse
	if e := json.NewDecoder(res.Body).Decode(&out); e != nil {
		return nil, fmt.Errorf("decode insights: %w", e)
	}
	return &out, nil
}

// Healthy probes the health endpoint. Without one configured the service is assumed up.
func (this *InsightsClient) Healthy(ctx context.Context) bool {
	if this.healthUrl == "" {
		return true
	}

	req, e := http.NewRequestWithContext(ctx, http.MethodGet, this.healthUrl, nil)
	if e != nil {
		return false
	}
	res, e := this.client.Do(req)
	if e != nil {
		return false
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	return res.StatusCode >= 200 && res.StatusCode <= 299
}
