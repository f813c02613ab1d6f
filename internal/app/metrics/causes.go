package metrics

import (
	"slices"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/models"
)

const otherCause = "Other"

type CauseCount struct {
	Cause         string `json:"cause"`
	CasesReworked int    `json:"casesReworked"`
}

// RankRootCauses sums reworked cases per root cause, highest first. Equal sums keep the
// order in which the causes first appear.
func RankRootCauses(records []models.CanonicalRecord) []CauseCount {
	index := make(map[string]int)
	out := make([]CauseCount, 0)
	for _, r := range records {
		cause := r.RootCause
		if cause == "" {
			cause = "Unknown"
		}
		i, ok := index[cause]
		if !ok {
			i = len(out)
			index[cause] = i
			out = append(out, CauseCount{Cause: cause})
		}
		out[i].CasesReworked += r.CasesReworked
	}

	slices.SortStableFunc(out, func(a, b CauseCount) int {
		return b.CasesReworked - a.CasesReworked
	})
	return out
}

// RootCauseBreakdown keeps the top causes and folds the rest into "Other" when they
// add up to more than zero.
func RootCauseBreakdown(records []models.CanonicalRecord, top int) []CauseCount {
	ranked := RankRootCauses(records)
	if len(ranked) <= top {
		return ranked
	}

	out := slices.Clone(ranked[:top])
	rest := 0
	for _, c := range ranked[top:] {
		rest += c.CasesReworked
	}
	if rest > 0 {
		out = append(out, CauseCount{Cause: otherCause, CasesReworked: rest})
	}
	return out
}

// TopLocation is the location covering the most hold units; first seen wins ties.
func TopLocation(records []models.CanonicalRecord) string {
	return topBy(records, func(r models.CanonicalRecord) string { return r.Location },
		func(r models.CanonicalRecord) int { return r.CasesProduced })
}

// TopDisposition is the disposition covering the most hold units.
func TopDisposition(records []models.CanonicalRecord) string {
	return topBy(records, func(r models.CanonicalRecord) string { return strings.TrimSpace(r.Disposition) },
		func(r models.CanonicalRecord) int { return r.CasesProduced })
}

func topBy(records []models.CanonicalRecord, key func(models.CanonicalRecord) string, weight func(models.CanonicalRecord) int) string {
	sums := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += weight(r)
	}

	best, bestSum := noValue, -1
	for _, k := range order {
		if sums[k] > bestSum {
			best, bestSum = k, sums[k]
		}
	}
	return best
}
