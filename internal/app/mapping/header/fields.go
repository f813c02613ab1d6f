package header_mapping_service

// Field is a logical column of a quality-hold export.
type Field string

const (
	FieldHoldDate       Field = "holdDate"
	FieldProductionDate Field = "productionDate"
	FieldGenericDate    Field = "date"
	FieldDescription    Field = "description"
	FieldItemType       Field = "itemType"
	FieldDisposition    Field = "disposition"
	FieldRootCause      Field = "rootCause"
	FieldCasesProduced  Field = "casesProduced"
	FieldCasesReworked  Field = "casesReworked"
	FieldCost           Field = "cost"
	FieldCostImpact     Field = "costImpact"
	FieldReworkLag      Field = "reworkLag"
	FieldPlantName      Field = "plantName"
	FieldWorkCenter     Field = "workCenter"
	FieldSite           Field = "site"
	FieldMfgOrder       Field = "mfgOrder"
	FieldWorkOrder      Field = "workOrder"

	FieldGoalReworkCost          Field = "goalReworkCost"
	FieldGoalReleaseRate         Field = "goalReleaseRate"
	FieldGoalRootCauseAssignment Field = "goalRootCauseAssignment"
)

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	_, ok := allFieldMap[f]
	return ok
}

var allFields = []Field{
	FieldHoldDate,
	FieldProductionDate,
	FieldGenericDate,
	FieldDescription,
	FieldItemType,
	FieldDisposition,
	FieldRootCause,
	FieldCasesProduced,
	FieldCasesReworked,
	FieldCost,
	FieldCostImpact,
	FieldReworkLag,
	FieldPlantName,
	FieldWorkCenter,
	FieldSite,
	FieldMfgOrder,
	FieldWorkOrder,
	FieldGoalReworkCost,
	FieldGoalReleaseRate,
	FieldGoalRootCauseAssignment,
}

func AllFields() []Field {
	return allFields
}

var allFieldMap = func() map[Field]struct{} {
	m := make(map[Field]struct{}, len(allFields))
	for _, f := range allFields {
		m[f] = struct{}{}
	}
	return m
}()

func AllFieldMap() map[Field]struct{} {
	return allFieldMap
}
