package dtos

type ColumnMapping struct {
	Header string `json:"header"`
	Field  string `json:"field"`
	Index  int    `json:"index"`
}

// TablePreview shows how an upload would be read without loading it.
type TablePreview struct {
	FileName  string          `json:"fileName"`
	Format    string          `json:"format"`
	SheetName string          `json:"sheetName,omitempty"`
	HeaderRow int             `json:"headerRow"`
	Score     int             `json:"score"`
	Header    []string        `json:"header"`
	Columns   []ColumnMapping `json:"columns"`
	Missing   []string        `json:"missing"`
	Rows      [][]string      `json:"rows"`
	TotalRows int             `json:"totalRows"`
}
