package dtos

// DashboardQuery carries the filter controls. Dates are YYYY-MM-DD; locations may be
// repeated or comma separated.
type DashboardQuery struct {
	From        string   `query:"from" json:"from"`
	To          string   `query:"to" json:"to"`
	Locations   []string `query:"locations" json:"locations"`
	Granularity string   `query:"granularity" json:"granularity"`
	Sort        string   `query:"sort" json:"sort"`
}

type RecordSearchQuery struct {
	Q     string `query:"q" json:"q"`
	Limit int    `query:"limit" json:"limit"`
}
