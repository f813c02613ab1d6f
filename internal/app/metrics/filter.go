package metrics

import (
	"slices"
	"time"

	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer"
)

// Filter selects records by date range and location. From and To are whole days, both
// inclusive. An empty Locations list means every location.
type Filter struct {
	From      *time.Time
	To        *time.Time
	Locations []string
}

// Apply keeps matching records in their original order. Records whose date cannot be
// parsed never match.
func (f Filter) Apply(records []models.CanonicalRecord) []models.CanonicalRecord {
	var from, to time.Time
	if f.From != nil {
		from = dayStart(*f.From)
	}
	if f.To != nil {
		to = dayStart(*f.To)
	}

	out := make([]models.CanonicalRecord, 0, len(records))
	for _, r := range records {
		dt, ok := normalizer.ParseFlexibleDate(r.DateKey())
		if !ok {
			continue
		}
		if f.From != nil && dt.Before(from) {
			continue
		}
		if f.To != nil && dt.After(to) {
			continue
		}
		if len(f.Locations) > 0 && !slices.Contains(f.Locations, r.Location) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Locations lists the distinct non-empty locations in ascending order.
func Locations(records []models.CanonicalRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if r.Location == "" {
			continue
		}
		if _, ok := seen[r.Location]; ok {
			continue
		}
		seen[r.Location] = struct{}{}
		out = append(out, r.Location)
	}
	slices.Sort(out)
	return out
}
