package metrics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity defaults to month for anything it does not recognise.
func ParseGranularity(s string) Granularity {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case GranularityDay:
		return GranularityDay
	case GranularityWeek:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

type CostBucket struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Start  time.Time `json:"start"`
	Rework float64   `json:"rework"`
	Scrap  float64   `json:"scrap"`
}

// WeekStart is the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func bucketFor(dt time.Time, g Granularity) (key, label string, start time.Time) {
	switch g {
	case GranularityDay:
		start = dayStart(dt)
		return start.Format("2006-01-02"), start.Format("01/02/2006"), start
	case GranularityWeek:
		start = WeekStart(dt)
		return "week-" + start.Format("2006-01-02"), "Week of " + start.Format("01/02/2006"), start
	default:
		start = time.Date(dt.Year(), dt.Month(), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("month-%s", start.Format("2006-01")), start.Format("Jan 2006"), start
	}
}

// CostSeries sums attributed rework and scrap cost per period, oldest first. Records
// without a parseable date are left out.
func CostSeries(records []models.CanonicalRecord, g Granularity) []CostBucket {
	byKey := make(map[string]*CostBucket)
	for _, r := range records {
		dt, ok := normalizer.ParseFlexibleDate(r.DateKey())
		if !ok {
			continue
		}
		key, label, start := bucketFor(dt, g)
		b, ok := byKey[key]
		if !ok {
			b = &CostBucket{Key: key, Label: label, Start: start}
			byKey[key] = b
		}
		b.Rework += r.CostRework
		b.Scrap += r.CostScrap
	}

	out := make([]CostBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b CostBucket) int {
		return a.Start.Compare(b.Start)
	})
	return out
}
