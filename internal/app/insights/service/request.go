package insights_service

import (
	"fmt"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/metrics"
)

// BuildRequest condenses the filtered records into the insights payload.
func BuildRequest(records []models.CanonicalRecord) dtos.InsightsRequest {
	s := metrics.Summarize(records)
	m := dtos.InsightsMetrics{
		TotalHoldUnits:     s.TotalHoldUnits,
		TotalItemsReworked: s.TotalReworked,
		ReworkPercent:      rounded(s.ReworkPct),
		PercentScrapped:    rounded(s.ScrapPct),
		TopRootCause:       s.TopRootCause,
		TopLocation:        metrics.TopLocation(records),
		TopDisposition:     metrics.TopDisposition(records),
	}

	text := fmt.Sprintf(
		"%d hold records over %d days: %d hold units, %d reworked (%s), %s scrapped. Top root cause %s; top location %s; most common disposition %s.",
		s.RecordCount, s.DaysTracked, s.TotalHoldUnits, s.TotalReworked, s.ReworkPct, s.ScrapPct,
		m.TopRootCause, m.TopLocation, m.TopDisposition,
	)
	return dtos.InsightsRequest{SummaryText: text, Metrics: m}
}

func rounded(p metrics.Percent) float64 {
	if !p.Valid {
		return 0
	}
	return p.Rounded()
}
