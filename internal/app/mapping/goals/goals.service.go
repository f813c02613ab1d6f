package goals_mapping_service

import (
	"log/slog"
	"math"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer/numbers"
)

const (
	horizontalPairs = 12
	verticalRows    = 30
)

type labelRule struct {
	keywords []string
	metric   models.GoalMetric
}

// Evaluated top to bottom; the bare "rework" and "release" rules are last-resort matches.
var labelRules = []labelRule{
	{[]string{"rework cost"}, models.GoalReworkCost},
	{[]string{"release rate", "released"}, models.GoalReleaseRate},
	{[]string{"root cause assignment", "assignment"}, models.GoalRootCauseAssignment},
	{[]string{"rework"}, models.GoalReworkCost},
	{[]string{"release"}, models.GoalReleaseRate},
}

// MetricForLabel maps free label text to a goal metric. Matching is case-insensitive
// and substring based.
func MetricForLabel(label string) (models.GoalMetric, bool) {
	l := strings.Join(strings.Fields(strings.ToLower(label)), " ")
	if l == "" {
		return "", false
	}
	for _, rule := range labelRules {
		for _, k := range rule.keywords {
			if strings.Contains(l, k) {
				return rule.metric, true
			}
		}
	}
	return "", false
}

type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Extract reads goal values from a goals table laid out either horizontally (label row
// over value row) or vertically (label in the first cell, value further right). Both
// layouts are tried; a later hit overwrites an earlier one for the same metric.
func (this *Service) Extract(rows app.RawTable) models.GoalOverrides {
	found := models.GoalOverrides{}
	extractHorizontal(rows, found)
	extractVertical(rows, found)

	if len(found) > 0 {
		this.log.Info("goals extracted", "goals", found)
	}
	return found
}

func extractHorizontal(rows app.RawTable, into models.GoalOverrides) {
	for i := 0; i < horizontalPairs && i+1 < len(rows); i++ {
		labels, values := rows[i], rows[i+1]
		for c, label := range labels {
			metric, ok := MetricForLabel(label)
			if !ok || c >= len(values) {
				continue
			}
			if v, ok := goalValue(values[c]); ok {
				into[metric] = v
			}
		}
	}
}

func extractVertical(rows app.RawTable, into models.GoalOverrides) {
	for i := 0; i < verticalRows && i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}
		metric, ok := MetricForLabel(row[0])
		if !ok {
			continue
		}
		for _, cell := range row[1:] {
			if v, ok := goalValue(cell); ok {
				into[metric] = v
				break
			}
		}
	}
}

func goalValue(s string) (float64, bool) {
	v := numbers.ParseGoal(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
