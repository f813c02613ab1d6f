package normalizer

import (
	"log/slog"
	"math"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer/numbers"
)

const unknown = "Unknown"

type hmf = header_mapping_service.Field

// NormalizeRow turns one data row into a record. It reports false for rows that are
// entirely blank or have no value in the date column.
func NormalizeRow(raw []string, cols header_mapping_service.ColumnMap) (models.CanonicalRecord, bool) {
	row := make([]string, len(raw))
	blank := true
	for i, v := range raw {
		row[i] = strings.TrimSpace(v)
		if row[i] != "" {
			blank = false
		}
	}
	if blank {
		return models.CanonicalRecord{}, false
	}

	dateCol := cols.DateColumn()
	if dateCol < 0 || dateCol >= len(row) || row[dateCol] == "" {
		return models.CanonicalRecord{}, false
	}
	dateValue := row[dateCol]

	cell := func(f hmf) string { return cols.Cell(row, f) }
	orDefault := func(f hmf) string {
		if v := cell(f); v != "" {
			return v
		}
		return unknown
	}

	rec := models.CanonicalRecord{
		WorkOrderID:    workOrder(row, cols),
		ProductionDate: cell(header_mapping_service.FieldProductionDate),
		HoldDate:       dateValue,
		Description:    orDefault(header_mapping_service.FieldDescription),
		ItemType:       orDefault(header_mapping_service.FieldItemType),
		Disposition:    cell(header_mapping_service.FieldDisposition),
		Location:       location(row, cols),
		RootCause:      orDefault(header_mapping_service.FieldRootCause),
		CasesProduced:  numbers.ParseCount(cell(header_mapping_service.FieldCasesProduced)),
		CasesReworked:  numbers.ParseCount(cell(header_mapping_service.FieldCasesReworked)),
		Cost:           numbers.ParseCost(cell(header_mapping_service.FieldCost)),
		ReworkLag:      cell(header_mapping_service.FieldReworkLag),
	}
	if cols.Has(header_mapping_service.FieldHoldDate) {
		rec.HoldDate = cell(header_mapping_service.FieldHoldDate)
	}

	rec.CostImpact = rec.Cost
	if cols.Has(header_mapping_service.FieldCostImpact) {
		if v, ok := numbers.Normalize(cell(header_mapping_service.FieldCostImpact)); ok {
			rec.CostImpact = v
		}
	}

	rec.CostRework, rec.CostScrap = Attribute(rec.CasesProduced, rec.CasesReworked, rec.Cost, rec.Disposition)

	rec.GoalReworkCost = goal(cell(header_mapping_service.FieldGoalReworkCost))
	rec.GoalReleaseRate = goal(cell(header_mapping_service.FieldGoalReleaseRate))
	rec.GoalRootCauseAssignment = goal(cell(header_mapping_service.FieldGoalRootCauseAssignment))

	return rec, true
}

// workOrder prefers the manufacturing order, then a work-order or batch column, then
// the second cell of the row.
func workOrder(row []string, cols header_mapping_service.ColumnMap) string {
	if v := cols.Cell(row, header_mapping_service.FieldMfgOrder); v != "" {
		return v
	}
	if v := cols.Cell(row, header_mapping_service.FieldWorkOrder); v != "" {
		return v
	}
	if len(row) > 1 {
		return row[1]
	}
	return ""
}

func location(row []string, cols header_mapping_service.ColumnMap) string {
	for _, f := range []hmf{
		header_mapping_service.FieldPlantName,
		header_mapping_service.FieldWorkCenter,
		header_mapping_service.FieldSite,
	} {
		if v := cols.Cell(row, f); v != "" {
			return v
		}
	}
	return unknown
}

func goal(s string) *float64 {
	if s == "" {
		return nil
	}
	v := numbers.ParseGoal(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type Service struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Normalize converts every data row of the table. Skipped rows are counted, not
// reported individually.
func (this *Service) Normalize(table *app.ParseTableResult, cols header_mapping_service.ColumnMap) []models.CanonicalRecord {
	records := make([]models.CanonicalRecord, 0, len(table.Rows))
	skipped := 0
	for _, row := range table.Rows {
		rec, ok := NormalizeRow(row, cols)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	this.log.Info("rows normalized", "records", len(records), "skipped", skipped)
	return records
}
