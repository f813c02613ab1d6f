package dashboard_service

import (
	"fmt"
	"strings"
	"time"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/internal/app/metrics"
)

const dateLayout = "2006-01-02"

// ParseFilter turns the filter controls into a metrics.Filter. Blank bounds are open.
func ParseFilter(q dtos.DashboardQuery) (metrics.Filter, error) {
	var f metrics.Filter

	from, err := parseDay(q.From)
	if err != nil {
		return f, fmt.Errorf("from: %w", err)
	}
	to, err := parseDay(q.To)
	if err != nil {
		return f, fmt.Errorf("to: %w", err)
	}
	if from != nil && to != nil && to.Before(*from) {
		return f, fmt.Errorf("to %s is before from %s", q.To, q.From)
	}
	f.From, f.To = from, to

	for _, l := range q.Locations {
		for _, part := range strings.Split(l, ",") {
			if part = strings.TrimSpace(part); part != "" {
				f.Locations = append(f.Locations, part)
			}
		}
	}
	return f, nil
}

func parseDay(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("want YYYY-MM-DD, got %q", s)
	}
	return &t, nil
}
