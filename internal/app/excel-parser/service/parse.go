package excel_parser_service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/xuri/excelize/v2"
)

func readWorkbook(file []byte) ([]app.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", app.ErrUnsupportedFormat, err)
	}
	defer f.Close()

	sheets := make([]app.Sheet, 0, len(f.GetSheetList()))
	for _, name := range f.GetSheetList() {
		grid, err := getFilledGrid(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, app.Sheet{Name: name, Rows: grid})
	}
	return sheets, nil
}

// getFilledGrid returns the sheet as a rectangular grid of trimmed values; every cell of
// a merged range carries the merged value.
func getFilledGrid(f *excelize.File, sheet string) (app.RawTable, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	maxCol := 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}

	grid := make(app.RawTable, len(rows))
	for i := range grid {
		grid[i] = make([]string, maxCol)
		for j, cell := range rows[i] {
			grid[i][j] = strings.TrimSpace(cell)
		}
	}

	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			continue
		}
		val := strings.TrimSpace(merge.GetCellValue())
		for r := startRow - 1; r < endRow && r < len(grid); r++ {
			for c := startCol - 1; c < endCol && c < len(grid[r]); c++ {
				grid[r][c] = val
			}
		}
	}

	return grid, nil
}

func isGoalSheet(name string) bool {
	return strings.Contains(strings.ToLower(name), "goal")
}

// dataSheetCandidates skips goal sheets unless nothing else is left.
func dataSheetCandidates(sheets []app.Sheet) []app.Sheet {
	out := make([]app.Sheet, 0, len(sheets))
	for _, s := range sheets {
		if !isGoalSheet(s.Name) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return sheets
	}
	return out
}

// pickDataSheet returns the sheet and header row with the best score across all
// candidate sheets. Earlier sheets win ties.
func pickDataSheet(sheets []app.Sheet, maxScan int) (app.Sheet, HeaderMatch, error) {
	var (
		bestSheet app.Sheet
		best      = HeaderMatch{Row: -1, Score: -1}
	)
	for _, s := range dataSheetCandidates(sheets) {
		m, err := LocateHeader(s.Rows, maxScan)
		if err != nil {
			continue
		}
		if m.Score > best.Score {
			bestSheet, best = s, m
		}
	}
	if best.Row < 0 {
		return app.Sheet{}, best, fmt.Errorf("%d sheets scanned: %w", len(sheets), app.ErrNoDataSheetFound)
	}
	return bestSheet, best, nil
}
