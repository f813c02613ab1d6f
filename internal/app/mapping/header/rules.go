package header_mapping_service

import (
	"strings"

	"github.com/init-pkg/rework-tracker/domain/models"
	goals_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/goals"
)

// Rule binds a field to one header predicate. Rules are evaluated top to bottom and the
// first rule that finds a cell for a still-unresolved field wins; within a rule the
// leftmost matching cell wins.
type Rule struct {
	Field Field
	Name  string
	Match func(c Cell) bool
}

func contains(k string) func(Cell) bool {
	return func(c Cell) bool { return strings.Contains(c.Norm, k) }
}

func strippedIs(ks ...string) func(Cell) bool {
	return func(c Cell) bool {
		for _, k := range ks {
			if c.Stripped == k {
				return true
			}
		}
		return false
	}
}

func strippedContains(k string) func(Cell) bool {
	return func(c Cell) bool { return strings.Contains(c.Stripped, k) }
}

func alnumIs(ks ...string) func(Cell) bool {
	return func(c Cell) bool {
		for _, k := range ks {
			if c.Alnum == k {
				return true
			}
		}
		return false
	}
}

func and(ps ...func(Cell) bool) func(Cell) bool {
	return func(c Cell) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

func not(p func(Cell) bool) func(Cell) bool {
	return func(c Cell) bool { return !p(c) }
}

func isGoal(c Cell) bool      { return c.IsGoal() }
func hasCurrency(c Cell) bool { return c.HasCurrency() }

func goalFor(m models.GoalMetric) func(Cell) bool {
	return func(c Cell) bool {
		if !c.IsGoal() {
			return false
		}
		got, ok := goals_mapping_service.MetricForLabel(c.Norm)
		return ok && got == m
	}
}

func rule(f Field, name string, p func(Cell) bool) Rule {
	return Rule{Field: f, Name: name, Match: and(not(isGoal), p)}
}

var rules = []Rule{
	rule(FieldHoldDate, "hold date", contains("hold date")),
	rule(FieldHoldDate, "date placed", contains("date placed")),
	rule(FieldHoldDate, "date held", contains("date held")),
	rule(FieldHoldDate, "hold", contains("hold")),

	rule(FieldProductionDate, "production date", contains("production date")),
	rule(FieldProductionDate, "product date", contains("product date")),
	rule(FieldProductionDate, "date produced", contains("date produced")),
	rule(FieldProductionDate, "prod date", contains("prod date")),

	rule(FieldGenericDate, "date", contains("date")),
	rule(FieldGenericDate, "day", contains("day")),

	rule(FieldDescription, "description", and(not(contains("date")), contains("description"))),
	rule(FieldDescription, "desc", and(not(contains("date")), contains("desc"))),
	rule(FieldDescription, "product", and(not(contains("date")), contains("product"))),
	rule(FieldDescription, "item", and(not(contains("date")), not(contains("type")), contains("item"))),

	rule(FieldItemType, "item type", contains("item type")),
	rule(FieldItemType, "type", contains("type")),
	rule(FieldItemType, "category", contains("category")),

	rule(FieldDisposition, "disposition", strippedIs("disposition", "status")),

	rule(FieldRootCause, "root cause", contains("root cause")),
	rule(FieldRootCause, "cause", contains("cause")),
	rule(FieldRootCause, "root", contains("root")),
	rule(FieldRootCause, "reason", contains("reason")),

	rule(FieldCasesProduced, "cases produced", alnumIs("casesproduced")),
	rule(FieldCasesReworked, "cases reworked", alnumIs("casesreworked")),

	rule(FieldCost, "cost", strippedIs("cost")),
	rule(FieldCost, "scrap amount", and(strippedContains("scrap"), hasCurrency)),
	rule(FieldCost, "rework amount", and(strippedContains("rework"), hasCurrency)),

	rule(FieldCostImpact, "cost impact", strippedContains("costimpact")),
	rule(FieldReworkLag, "rework lag", strippedContains("reworklag")),

	rule(FieldPlantName, "plant name", strippedContains("plantname")),
	rule(FieldPlantName, "plant", strippedIs("plant")),
	rule(FieldWorkCenter, "work center text", strippedContains("workcentertext")),
	rule(FieldWorkCenter, "work center", strippedContains("workcenter")),
	rule(FieldSite, "site", contains("site")),
	rule(FieldSite, "location", contains("location")),

	rule(FieldMfgOrder, "mfg order", alnumIs("mfgord", "mfgorder")),
	rule(FieldWorkOrder, "work order", alnumIs("wo", "workorder", "workordernumber", "workorderid", "batch", "batchnumber")),
	rule(FieldWorkOrder, "work order text", func(c Cell) bool { return strings.Contains(c.Alnum, "workorder") }),

	{Field: FieldGoalReworkCost, Name: "rework cost goal", Match: goalFor(models.GoalReworkCost)},
	{Field: FieldGoalReleaseRate, Name: "release rate goal", Match: goalFor(models.GoalReleaseRate)},
	{Field: FieldGoalRootCauseAssignment, Name: "root cause assignment goal", Match: goalFor(models.GoalRootCauseAssignment)},
}

func Rules() []Rule {
	return rules
}
