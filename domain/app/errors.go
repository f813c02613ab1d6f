package app

import "errors"

var (
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoDataSheetFound  = errors.New("no data sheet found")
	ErrMissingDateColumn = errors.New("file must contain a date column")
	ErrEmptyResult       = errors.New("file is empty or has no usable data rows")

	ErrQuotaExceeded    = errors.New("storage quota exceeded")
	ErrIngestInProgress = errors.New("another file is being loaded")
	ErrSearchDisabled   = errors.New("record search is not configured")
)

// ErrorKind is the user-facing name of a recoverable ingestion failure.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFileTooLarge):
		return "FileTooLarge"
	case errors.Is(err, ErrUnsupportedFormat):
		return "UnsupportedFormat"
	case errors.Is(err, ErrNoDataSheetFound):
		return "NoDataSheetFound"
	case errors.Is(err, ErrMissingDateColumn):
		return "MissingDateColumn"
	case errors.Is(err, ErrEmptyResult):
		return "EmptyResult"
	case errors.Is(err, ErrIngestInProgress):
		return "IngestInProgress"
	default:
		return "Internal"
	}
}
