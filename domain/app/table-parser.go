package app

// RawTable is an ordered sequence of rows, each an ordered sequence of text cells.
// Rows may be ragged.
type RawTable [][]string

type FileFormat string

const (
	FormatCSV      FileFormat = "csv"
	FormatWorkbook FileFormat = "xlsx"
)

type Sheet struct {
	Name string   `json:"name"`
	Rows RawTable `json:"rows"`
}

// ParsedFile is the raw grid content of one uploaded file. CSV input yields a single
// unnamed sheet.
type ParsedFile struct {
	Name   string     `json:"name"`
	Format FileFormat `json:"format"`
	Sheets []Sheet    `json:"sheets"`
}

// ParseTableResult is the data table chosen out of a ParsedFile: the header row plus
// every non-blank row below it.
type ParseTableResult struct {
	SheetName string     `json:"sheet_name,omitempty"`
	HeaderRow int        `json:"header_row"`
	Score     int        `json:"score"`
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
}
