package metrics

import (
	"math"

	"github.com/init-pkg/rework-tracker/domain/models"
)

type Direction string

const (
	HigherIsBetter Direction = "higher"
	LowerIsBetter  Direction = "lower"
)

type Status string

const (
	StatusAtGoal      Status = "At Goal"
	StatusExceeds     Status = "Exceeds Goal"
	StatusApproaching Status = "Approaching"
	StatusOffTrack    Status = "Off Track"
	StatusNA          Status = "N/A"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GoalStatus classifies current against goal. Values within max(0.2, 1% of goal) are at
// goal; values on the wrong side but within max(1, 5% of goal) are approaching.
func GoalStatus(current, goal float64, dir Direction) Status {
	if !finite(current) || !finite(goal) {
		return StatusNA
	}

	delta := current - goal
	atGoal := math.Max(0.2, math.Abs(goal)*0.01)
	near := math.Max(1.0, math.Abs(goal)*0.05)

	if math.Abs(delta) <= atGoal {
		return StatusAtGoal
	}
	if dir == LowerIsBetter {
		delta = -delta
	}
	switch {
	case delta > atGoal:
		return StatusExceeds
	case delta >= -near:
		return StatusApproaching
	default:
		return StatusOffTrack
	}
}

// ScaleFactor is the filtered share of the full dataset by hold units, or by record
// count when the dataset has no hold units.
func ScaleFactor(full, filtered []models.CanonicalRecord) float64 {
	fullUnits, filteredUnits := holdUnits(full), holdUnits(filtered)
	if fullUnits > 0 {
		return float64(filteredUnits) / float64(fullUnits)
	}
	if len(full) > 0 {
		return float64(len(filtered)) / float64(len(full))
	}
	return 1
}

func holdUnits(records []models.CanonicalRecord) int {
	n := 0
	for _, r := range records {
		n += r.CasesProduced
	}
	return n
}

// ScaleGoal scales absolute goals by factor. Rate goals are only clamped to [0, 100].
func ScaleGoal(m models.GoalMetric, goal, factor float64) float64 {
	if m.IsRate() {
		return math.Min(100, math.Max(0, goal))
	}
	return goal * factor
}

// EffectiveGoals overlays the first finite per-row override of each metric on the
// session goals.
func EffectiveGoals(records []models.CanonicalRecord, goals models.Goals) models.Goals {
	pick := func(get func(models.CanonicalRecord) *float64) (float64, bool) {
		for _, r := range records {
			if v := get(r); v != nil && finite(*v) {
				return *v, true
			}
		}
		return 0, false
	}

	if v, ok := pick(func(r models.CanonicalRecord) *float64 { return r.GoalReworkCost }); ok {
		goals.ReworkCost = v
	}
	if v, ok := pick(func(r models.CanonicalRecord) *float64 { return r.GoalReleaseRate }); ok {
		goals.ReleaseRate = v
	}
	if v, ok := pick(func(r models.CanonicalRecord) *float64 { return r.GoalRootCauseAssignment }); ok {
		goals.RootCauseAssignment = v
	}
	return goals
}

// RootCauseAssignment is the share of records with a root cause other than blank or
// "Unknown".
func RootCauseAssignment(records []models.CanonicalRecord) Percent {
	assigned := 0
	for _, r := range records {
		if r.RootCause != "" && r.RootCause != "Unknown" {
			assigned++
		}
	}
	return percentOf(float64(assigned), float64(len(records)))
}

type GoalResult struct {
	Metric    models.GoalMetric `json:"metric"`
	Current   float64           `json:"current"`
	Goal      float64           `json:"goal"`
	Direction Direction         `json:"direction"`
	Status    Status            `json:"status"`
}

var goalDirections = map[models.GoalMetric]Direction{
	models.GoalReworkCost:          LowerIsBetter,
	models.GoalReleaseRate:         HigherIsBetter,
	models.GoalRootCauseAssignment: HigherIsBetter,
}

// GoalReport compares the filtered records against goals scaled to their share of the
// full dataset.
func GoalReport(full, filtered []models.CanonicalRecord, goals models.Goals) []GoalResult {
	s := Summarize(filtered)
	factor := ScaleFactor(full, filtered)

	current := map[models.GoalMetric]float64{
		models.GoalReworkCost:          s.ReworkCost,
		models.GoalReleaseRate:         s.ReleasedPct.Float(),
		models.GoalRootCauseAssignment: RootCauseAssignment(filtered).Float(),
	}

	out := make([]GoalResult, 0, len(models.AllGoalMetrics()))
	for _, m := range models.AllGoalMetrics() {
		goal := ScaleGoal(m, goals.Get(m), factor)
		cur := current[m]
		out = append(out, GoalResult{
			Metric:    m,
			Current:   jsonSafe(cur),
			Goal:      goal,
			Direction: goalDirections[m],
			Status:    GoalStatus(cur, goal, goalDirections[m]),
		})
	}
	return out
}

// jsonSafe maps NaN to 0; the status already says N/A.
func jsonSafe(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}
