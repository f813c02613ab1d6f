package metrics

import (
	"strings"

	"github.com/init-pkg/rework-tracker/domain/models"
)

const noValue = "—"

type Summary struct {
	RecordCount    int     `json:"recordCount"`
	TotalHoldUnits int     `json:"totalHoldUnits"`
	TotalReworked  int     `json:"totalReworked"`
	ReleasedUnits  int     `json:"releasedUnits"`
	ScrapUnits     int     `json:"scrapUnits"`
	ReworkCost     float64 `json:"reworkCost"`
	ScrapCost      float64 `json:"scrapCost"`
	ReleasedPct    Percent `json:"releasedPct"`
	ScrapPct       Percent `json:"scrapPct"`
	ReworkPct      Percent `json:"reworkPct"`
	TopRootCause   string  `json:"topRootCause"`
	DaysTracked    int     `json:"daysTracked"`
}

func normDisposition(d string) string {
	return strings.Join(strings.Fields(strings.ToLower(d)), "")
}

// Summarize computes the headline totals. The rework branch and the scrap branch are
// independent, so one disposition can credit both.
func Summarize(records []models.CanonicalRecord) Summary {
	s := Summary{RecordCount: len(records), TopRootCause: noValue}
	days := make(map[string]struct{})

	for _, r := range records {
		s.TotalHoldUnits += r.CasesProduced
		s.TotalReworked += r.CasesReworked
		days[r.DateKey()] = struct{}{}

		disp := normDisposition(r.Disposition)
		remaining := r.UnitsNotReworked()
		if disp == "rework" {
			s.ReleasedUnits += remaining
			s.ReworkCost += r.CostRework
		} else if strings.Contains(disp, "release") {
			s.ReleasedUnits += remaining
		}
		if strings.Contains(disp, "scrap") {
			s.ScrapUnits += remaining
			s.ScrapCost += r.CostScrap
		}
	}

	hold := float64(s.TotalHoldUnits)
	s.ReleasedPct = percentOf(float64(s.ReleasedUnits), hold)
	s.ScrapPct = percentOf(float64(s.ScrapUnits), hold)
	s.ReworkPct = percentOf(float64(s.TotalReworked), hold)
	s.DaysTracked = len(days)

	if ranked := RankRootCauses(records); len(ranked) > 0 {
		s.TopRootCause = ranked[0].Cause
	}
	return s
}

// DispositionMix is the unit split shown in the disposition chart.
type DispositionMix struct {
	Released float64 `json:"released"`
	Reworked float64 `json:"reworked"`
	Scrapped float64 `json:"scrapped"`
}

// Mix derives the split from the summary percentages. Without hold units it falls back
// to counting dispositions directly.
func Mix(s Summary, records []models.CanonicalRecord) DispositionMix {
	if s.TotalHoldUnits > 0 && s.ReleasedPct.Valid && s.ReworkPct.Valid && s.ScrapPct.Valid {
		hold := float64(s.TotalHoldUnits)
		return DispositionMix{
			Released: hold * s.ReleasedPct.Value / 100,
			Reworked: hold * s.ReworkPct.Value / 100,
			Scrapped: hold * s.ScrapPct.Value / 100,
		}
	}

	var m DispositionMix
	for _, r := range records {
		disp := strings.ToLower(strings.TrimSpace(r.Disposition))
		if strings.Contains(disp, "release") {
			m.Released += float64(r.UnitsNotReworked())
		}
		if strings.Contains(disp, "rework") {
			m.Reworked += float64(r.CasesReworked)
		}
		if strings.Contains(disp, "scrap") {
			m.Scrapped += float64(r.UnitsNotReworked())
		}
	}
	return m
}
