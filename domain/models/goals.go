package models

type GoalMetric string

const (
	GoalReworkCost          GoalMetric = "reworkCost"
	GoalReleaseRate         GoalMetric = "releaseRate"
	GoalRootCauseAssignment GoalMetric = "rootCauseAssignment"
)

func (m GoalMetric) String() string {
	return string(m)
}

func (m GoalMetric) IsValid() bool {
	switch m {
	case GoalReworkCost, GoalReleaseRate, GoalRootCauseAssignment:
		return true
	default:
		return false
	}
}

// IsRate reports whether the metric is a percentage. Rate goals are never scaled by
// the filtered share of the dataset.
func (m GoalMetric) IsRate() bool {
	return m == GoalReleaseRate || m == GoalRootCauseAssignment
}

var allGoalMetrics = []GoalMetric{
	GoalReworkCost,
	GoalReleaseRate,
	GoalRootCauseAssignment,
}

func AllGoalMetrics() []GoalMetric {
	return allGoalMetrics
}

type Goals struct {
	ReworkCost          float64 `json:"reworkCost"`
	ReleaseRate         float64 `json:"releaseRate"`
	RootCauseAssignment float64 `json:"rootCauseAssignment"`
}

func DefaultGoals() Goals {
	return Goals{
		ReworkCost:          7_000_000,
		ReleaseRate:         40,
		RootCauseAssignment: 90,
	}
}

func (g Goals) Get(m GoalMetric) float64 {
	switch m {
	case GoalReworkCost:
		return g.ReworkCost
	case GoalReleaseRate:
		return g.ReleaseRate
	case GoalRootCauseAssignment:
		return g.RootCauseAssignment
	}
	return 0
}

func (g *Goals) Set(m GoalMetric, v float64) {
	switch m {
	case GoalReworkCost:
		g.ReworkCost = v
	case GoalReleaseRate:
		g.ReleaseRate = v
	case GoalRootCauseAssignment:
		g.RootCauseAssignment = v
	}
}

// GoalOverrides holds goal values read from a goals table. Missing metrics keep the
// value they are applied over.
type GoalOverrides map[GoalMetric]float64

func (o GoalOverrides) ApplyTo(g Goals) Goals {
	for m, v := range o {
		g.Set(m, v)
	}
	return g
}
