package header_mapping_service

import "strings"

// MinHeaderScore is reached only by rows carrying a date signal.
const MinHeaderScore = 5

type family struct {
	name     string
	weight   int
	keywords []string
}

var headerFamilies = []family{
	{"date", 5, []string{"hold date", "production date", "date produced", "prod date", "date", "day"}},
	{"cases produced", 2, []string{"cases produced"}},
	{"cases reworked", 2, []string{"cases reworked"}},
	{"cause", 2, []string{"root cause", "cause", "reason"}},
	{"disposition", 1, []string{"disposition", "status"}},
	{"location", 1, []string{"plant", "work center", "site", "location"}},
}

// ScoreRow sums the weight of every column family that appears somewhere in the row.
// Each family counts once.
func ScoreRow(row []string) int {
	cells := make([]Cell, 0, len(row))
	for _, v := range row {
		if c := NewCell(v); c.Norm != "" {
			cells = append(cells, c)
		}
	}
	if len(cells) == 0 {
		return 0
	}

	score := 0
	for _, f := range headerFamilies {
		if familyPresent(f, cells) {
			score += f.weight
		}
	}
	return score
}

func familyPresent(f family, cells []Cell) bool {
	for _, k := range f.keywords {
		sk := strings.ReplaceAll(k, " ", "")
		for _, c := range cells {
			if strings.Contains(c.Norm, k) || strings.Contains(c.Stripped, sk) {
				return true
			}
		}
	}
	return false
}
