package insights_service

import (
	"context"
	"log/slog"
	"time"

	"github.com/init-pkg/nova/errs"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	dashboard_service "github.com/init-pkg/rework-tracker/internal/app/dashboard/service"
	insights_client "github.com/init-pkg/rework-tracker/internal/clients/insights"
	openai_client "github.com/init-pkg/rework-tracker/internal/clients/openai"
	"github.com/init-pkg/rework-tracker/internal/config"
)

const maxInsights = 3

// Remote is the optional provider consulted before the local one.
type Remote struct {
	app.InsightsProvider
}

// NewRemote picks the configured provider; the local provider needs no remote.
func NewRemote(cfg *config.Config) Remote {
	switch cfg.Clients.Insights.Provider {
	case "http":
		return Remote{insights_client.New(cfg)}
	case "openai":
		return Remote{NewOpenAIProvider(openai_client.New(cfg), cfg.Clients.OpenAI.Model)}
	default:
		return Remote{}
	}
}

type InsightsService struct {
	log       *slog.Logger
	dashboard *dashboard_service.DashboardService
	remote    app.InsightsProvider
	local     LocalProvider
	timeout   time.Duration
}

func New(cfg *config.Config, log *slog.Logger, dashboard *dashboard_service.DashboardService, remote Remote) *InsightsService {
	return &InsightsService{
		log:       log,
		dashboard: dashboard,
		remote:    remote.InsightsProvider,
		timeout:   cfg.Clients.Insights.Timeout,
	}
}

func (this *InsightsService) Insights(ctx context.Context, q dtos.DashboardQuery) (*dtos.InsightsResponse, errs.Error) {
	sel, err := this.dashboard.Select(q)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return this.Generate(ctx, BuildRequest(sel.Filtered)), nil
}

// Generate asks the remote provider when it is configured and reachable, and answers
// locally otherwise. Liveness is probed on every call.
func (this *InsightsService) Generate(ctx context.Context, req dtos.InsightsRequest) *dtos.InsightsResponse {
	if this.remote == nil {
		return this.fallback(req, "")
	}

	if this.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, this.timeout)
		defer cancel()
	}

	if probed, ok := this.remote.(app.ProbedInsightsProvider); ok && !probed.Healthy(ctx) {
		return this.fallback(req, "insights service is not reachable")
	}

	res, err := this.remote.Generate(ctx, req)
	if err != nil {
		this.log.Warn("remote insights failed, using local summary", "provider", this.remote.Name(), "error", err)
		return this.fallback(req, err.Error())
	}

	if len(res.Insights) > maxInsights {
		res.Insights = res.Insights[:maxInsights]
	}
	res.Source = this.remote.Name()
	return res
}

// Health reports the remote provider's liveness for display.
func (this *InsightsService) Health(ctx context.Context) (string, bool) {
	if this.remote == nil {
		return this.local.Name(), true
	}
	probed, ok := this.remote.(app.ProbedInsightsProvider)
	if !ok {
		return this.remote.Name(), true
	}
	if this.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, this.timeout)
		defer cancel()
	}
	return this.remote.Name(), probed.Healthy(ctx)
}

func (this *InsightsService) fallback(req dtos.InsightsRequest, reason string) *dtos.InsightsResponse {
	if reason != "" {
		this.log.Info("insights fallback", "reason", reason)
	}
	res, _ := this.local.Generate(context.Background(), req)
	res.Source = this.local.Name()
	res.Fallback = reason
	return res
}
