package excel_parser_service

import (
	"strings"

	"github.com/init-pkg/rework-tracker/domain/app"
)

// --- helpers: непустые ячейки в строке
func nonEmptyInRow(row []string) (cnt int) {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			cnt++
		}
	}
	return
}

func isBlankRow(row []string) bool {
	return nonEmptyInRow(row) == 0
}

func trimRow(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// buildTable takes the header row and every non-blank row below it.
func buildTable(sheet string, rows app.RawTable, match HeaderMatch) *app.ParseTableResult {
	res := &app.ParseTableResult{
		SheetName: sheet,
		HeaderRow: match.Row,
		Score:     match.Score,
		Header:    trimRow(rows[match.Row]),
	}
	for _, row := range rows[match.Row+1:] {
		if isBlankRow(row) {
			continue
		}
		res.Rows = append(res.Rows, trimRow(row))
	}
	return res
}
