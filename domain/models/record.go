package models

// CanonicalRecord is one accepted data row of a quality-hold export.
//
// CasesReworked is not validated against CasesProduced; use UnitsNotReworked wherever the
// remainder is needed.
type CanonicalRecord struct {
	WorkOrderID    string `json:"workOrderId,omitempty"`
	ProductionDate string `json:"productionDate"`
	HoldDate       string `json:"holdDate"`
	Description    string `json:"description"`
	ItemType       string `json:"itemType"`
	// Disposition is stored as read; consumers normalise it.
	Disposition string `json:"disposition,omitempty"`
	Location    string `json:"location"`
	RootCause   string `json:"rootCause"`

	CasesProduced int     `json:"casesProduced"`
	CasesReworked int     `json:"casesReworked"`
	Cost          float64 `json:"cost"`
	CostImpact    float64 `json:"costImpact"`
	ReworkLag     string  `json:"reworkLag,omitempty"`
	CostRework    float64 `json:"costRework"`
	CostScrap     float64 `json:"costScrap"`

	// Per-row goal overrides; nil means no override.
	GoalReworkCost          *float64 `json:"goalReworkCost,omitempty"`
	GoalReleaseRate         *float64 `json:"goalReleaseRate,omitempty"`
	GoalRootCauseAssignment *float64 `json:"goalRootCauseAssignment,omitempty"`
}

// DateKey is the raw date text used for filtering and bucketing.
func (r CanonicalRecord) DateKey() string {
	if r.HoldDate != "" {
		return r.HoldDate
	}
	return r.ProductionDate
}

func (r CanonicalRecord) UnitsNotReworked() int {
	return max(r.CasesProduced-r.CasesReworked, 0)
}
