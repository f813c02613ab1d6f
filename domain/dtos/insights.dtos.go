package dtos

// InsightsMetrics is the metric block sent to the insights service.
type InsightsMetrics struct {
	TotalHoldUnits     int     `json:"totalHoldUnits"`
	TotalItemsReworked int     `json:"totalItemsReworked"`
	ReworkPercent      float64 `json:"reworkPercent"`
	PercentScrapped    float64 `json:"percentScrapped"`
	TopRootCause       string  `json:"topRootCause"`
	TopLocation        string  `json:"topLocation"`
	TopDisposition     string  `json:"topDisposition"`
}

type InsightsRequest struct {
	SummaryText string          `json:"summaryText"`
	Metrics     InsightsMetrics `json:"metrics"`
}

type InsightsResponse struct {
	Insights   []string `json:"insights"`
	KeyPhrases []string `json:"keyPhrases"`
	// Source names the provider that answered.
	Source string `json:"source"`
	// Fallback is the reason the local summary was used, if it was.
	Fallback string `json:"fallback,omitempty"`
}
