package excel_parser_service

import (
	"fmt"

	"github.com/init-pkg/rework-tracker/domain/app"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
)

type HeaderMatch struct {
	Row   int
	Score int
}

// LocateHeader scores the first maxScan rows and returns the best one. Blank rows are
// skipped and ties keep the earlier row. It fails with ErrMissingDateColumn when no
// row reaches the minimum score.
func LocateHeader(rows app.RawTable, maxScan int) (HeaderMatch, error) {
	best := HeaderMatch{Row: -1, Score: -1}
	for i := 0; i < maxScan && i < len(rows); i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		if score := header_mapping_service.ScoreRow(rows[i]); score > best.Score {
			best = HeaderMatch{Row: i, Score: score}
		}
	}

	if best.Row < 0 || best.Score < header_mapping_service.MinHeaderScore {
		return best, fmt.Errorf("best header score %d in first %d rows: %w", max(best.Score, 0), maxScan, app.ErrMissingDateColumn)
	}
	return best, nil
}
