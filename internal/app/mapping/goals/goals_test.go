package goals_mapping_service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
)

func newTestService() *Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestMetricForLabel(t *testing.T) {
	cases := []struct {
		label string
		want  models.GoalMetric
		ok    bool
	}{
		{"Rework Cost", models.GoalReworkCost, true},
		{"Release Rate", models.GoalReleaseRate, true},
		{"% Released", models.GoalReleaseRate, true},
		{"Root Cause Assignment", models.GoalRootCauseAssignment, true},
		{"Assignment %", models.GoalRootCauseAssignment, true},
		{"Rework", models.GoalReworkCost, true},
		{"Release", models.GoalReleaseRate, true},
		{"  REWORK   COST goal", models.GoalReworkCost, true},
		{"Scrap", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := MetricForLabel(tc.label)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractHorizontal(t *testing.T) {
	rows := app.RawTable{
		{"Plant goals FY24"},
		{"Rework Cost", "Release Rate", "Root Cause Assignment"},
		{"$5,000,000", "45%", "85"},
	}

	got := newTestService().Extract(rows)

	assert.Equal(t, models.GoalOverrides{
		models.GoalReworkCost:          5_000_000,
		models.GoalReleaseRate:         45,
		models.GoalRootCauseAssignment: 85,
	}, got)
}

func TestExtractVertical(t *testing.T) {
	rows := app.RawTable{
		{"Metric", "Notes", "Goal"},
		{"Rework Cost", "annual", "6,500,000"},
		{"Release Rate", "", "38%"},
		{"Unrelated", "12"},
	}

	got := newTestService().Extract(rows)

	assert.Equal(t, models.GoalOverrides{
		models.GoalReworkCost:  6_500_000,
		models.GoalReleaseRate: 38,
	}, got)
}

func TestExtractLastAppliedWins(t *testing.T) {
	rows := app.RawTable{
		{"Rework Cost", "100"},
		{"Rework", "200"},
	}

	got := newTestService().Extract(rows)

	assert.Equal(t, 200.0, got[models.GoalReworkCost])
}

func TestExtractNothing(t *testing.T) {
	got := newTestService().Extract(app.RawTable{{"Item", "Qty"}, {"Widget", "3"}})
	assert.Empty(t, got)
}

func TestApplyOverDefaults(t *testing.T) {
	got := newTestService().Extract(app.RawTable{{"Release Rate", "50"}}).ApplyTo(models.DefaultGoals())

	assert.Equal(t, models.Goals{ReworkCost: 7_000_000, ReleaseRate: 50, RootCauseAssignment: 90}, got)
}
