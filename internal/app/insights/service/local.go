package insights_service

import (
	"context"
	"fmt"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
)

const noValue = "—"

// LocalProvider derives insights from the metrics alone. It never fails.
type LocalProvider struct{}

var _ app.InsightsProvider = LocalProvider{}

func (LocalProvider) Name() string {
	return "local"
}

func (LocalProvider) Generate(_ context.Context, req dtos.InsightsRequest) (*dtos.InsightsResponse, error) {
	m := req.Metrics
	out := &dtos.InsightsResponse{Insights: make([]string, 0, 3), KeyPhrases: make([]string, 0, 3)}

	if m.TotalHoldUnits == 0 {
		out.Insights = append(out.Insights, "No hold units in the selected range.")
		return out, nil
	}

	out.Insights = append(out.Insights,
		fmt.Sprintf("%.1f%% of %d hold units were reworked.", m.ReworkPercent, m.TotalHoldUnits))
	if m.TopRootCause != noValue {
		out.Insights = append(out.Insights,
			fmt.Sprintf("%s is the leading root cause by reworked cases.", m.TopRootCause))
	}
	if m.PercentScrapped > 0 {
		out.Insights = append(out.Insights,
			fmt.Sprintf("%.1f%% of hold units were scrapped.", m.PercentScrapped))
	} else if m.TopLocation != noValue {
		out.Insights = append(out.Insights,
			fmt.Sprintf("%s held the most cases.", m.TopLocation))
	}

	for _, p := range []string{m.TopRootCause, m.TopLocation, m.TopDisposition} {
		if p != "" && p != noValue {
			out.KeyPhrases = append(out.KeyPhrases, p)
		}
	}
	return out, nil
}
