package app

type TableParserService interface {
	// CheckSize rejects uploads above the configured limit before anything is read.
	CheckSize(size int64) error
	// Parse reads raw grids out of the file. The format is chosen by file-name suffix.
	Parse(fileName string, file []byte) (*ParsedFile, error)
	// PickDataTable locates the header row (and, for workbooks, the data sheet).
	PickDataTable(file *ParsedFile) (*ParseTableResult, error)
	// GoalsSheet returns the first sheet whose name mentions goals.
	GoalsSheet(file *ParsedFile) (RawTable, bool)
}
