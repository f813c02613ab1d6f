package excel_parser_service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"

	"github.com/init-pkg/rework-tracker/domain/app"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readCSV decodes the file (BOM aware, Windows-1252 when the bytes are not UTF-8) and
// returns every record. Records may have different lengths.
func readCSV(file []byte) (app.RawTable, error) {
	var fallback encoding.Encoding = unicode.UTF8
	if !utf8.Valid(file) {
		fallback = charmap.Windows1252
	}
	decoded := transform.NewReader(bytes.NewReader(file), unicode.BOMOverride(fallback.NewDecoder()))

	r := csv.NewReader(decoded)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows := make(app.RawTable, 0, len(records))
	for _, rec := range records {
		if isBlankRow(rec) {
			continue
		}
		rows = append(rows, trimRow(rec))
	}
	return rows, nil
}
