package normalizer

import (
	"strings"

	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
)

// IsReworkDisposition matches "Rework" and "Rework ..." dispositions.
func IsReworkDisposition(disposition string) bool {
	lower := strings.ToLower(strings.TrimSpace(disposition))
	return header_mapping_service.Stripped(disposition) == "rework" || strings.HasPrefix(lower, "rework ")
}

// IsScrapDisposition matches "Scrap", "Scrapped" and "Scrap ..." dispositions.
func IsScrapDisposition(disposition string) bool {
	lower := strings.ToLower(strings.TrimSpace(disposition))
	switch header_mapping_service.Stripped(disposition) {
	case "scrap", "scrapped":
		return true
	}
	return strings.HasPrefix(lower, "scrap ")
}

// Attribute splits a batch cost by unit: cost covers casesProduced units, rework is
// charged for the reworked units and scrap for the units that were not reworked.
func Attribute(casesProduced, casesReworked int, cost float64, disposition string) (costRework, costScrap float64) {
	unitCost := 0.0
	if casesProduced > 0 {
		unitCost = cost / float64(casesProduced)
	}

	if IsReworkDisposition(disposition) {
		costRework = unitCost * float64(casesReworked)
	}
	if IsScrapDisposition(disposition) {
		costScrap = unitCost * float64(max(casesProduced-casesReworked, 0))
	}
	return costRework, costScrap
}
