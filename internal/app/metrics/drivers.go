package metrics

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer/numbers"
)

type DriverSort string

const (
	SortByCases DriverSort = "cases"
	SortByCost  DriverSort = "cost"
	SortByLag   DriverSort = "lag"
)

func ParseDriverSort(s string) DriverSort {
	switch DriverSort(strings.ToLower(strings.TrimSpace(s))) {
	case SortByCost:
		return SortByCost
	case SortByLag:
		return SortByLag
	default:
		return SortByCases
	}
}

type DriverRow struct {
	WorkOrder   string  `json:"workOrder"`
	Date        string  `json:"date"`
	Cases       int     `json:"cases"`
	RootCause   string  `json:"rootCause"`
	Disposition string  `json:"disposition"`
	Cost        float64 `json:"cost"`
	Age         string  `json:"age"`
}

func lagDays(r models.CanonicalRecord) float64 {
	v, ok := numbers.Normalize(r.ReworkLag)
	if !ok {
		return 0
	}
	return v
}

// DefectDrivers returns the top records by the chosen key, largest first.
func DefectDrivers(records []models.CanonicalRecord, by DriverSort, limit int) []DriverRow {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.CanonicalRecord) int {
		switch by {
		case SortByCost:
			return cmp.Compare(b.Cost, a.Cost)
		case SortByLag:
			return cmp.Compare(lagDays(b), lagDays(a))
		default:
			return cmp.Compare(b.CasesProduced, a.CasesProduced)
		}
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]DriverRow, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, DriverRow{
			WorkOrder:   orDash(strings.TrimSpace(r.WorkOrderID)),
			Date:        orDash(r.DateKey()),
			Cases:       r.CasesProduced,
			RootCause:   orDash(r.RootCause),
			Disposition: orDash(r.Disposition),
			Cost:        r.Cost,
			Age:         ageText(r.ReworkLag),
		})
	}
	return out
}

func ageText(lag string) string {
	lag = strings.TrimSpace(lag)
	if lag == "" {
		return noValue
	}
	if v, ok := numbers.Normalize(lag); ok {
		return strconv.FormatFloat(v, 'f', -1, 64) + " days"
	}
	return lag
}

func orDash(s string) string {
	if s == "" {
		return noValue
	}
	return s
}
