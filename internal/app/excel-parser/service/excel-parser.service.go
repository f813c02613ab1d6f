package excel_parser_service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/internal/config"
)

type ExcelParserService struct {
	log      *slog.Logger
	maxBytes int64
	maxScan  int
}

var _ app.TableParserService = &ExcelParserService{}

func New(cfg *config.Config, log *slog.Logger) *ExcelParserService {
	return &ExcelParserService{
		log:      log,
		maxBytes: cfg.Ingest.MaxUploadBytes,
		maxScan:  cfg.Ingest.HeaderScanRows,
	}
}

// DetectFormat chooses the reader by file-name suffix only.
func DetectFormat(fileName string) (app.FileFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".csv", ".txt":
		return app.FormatCSV, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return app.FormatWorkbook, nil
	case ".xls":
		return "", fmt.Errorf("%w: legacy .xls workbooks cannot be read, save the file as .xlsx or .csv", app.ErrUnsupportedFormat)
	default:
		return "", fmt.Errorf("%w: %q", app.ErrUnsupportedFormat, ext)
	}
}

func (this *ExcelParserService) CheckSize(size int64) error {
	if size > this.maxBytes {
		return fmt.Errorf("%w: file is %.1f MB, the limit is %.0f MB", app.ErrFileTooLarge, mb(size), mb(this.maxBytes))
	}
	return nil
}

func (this *ExcelParserService) Parse(fileName string, file []byte) (*app.ParsedFile, error) {
	if err := this.CheckSize(int64(len(file))); err != nil {
		return nil, err
	}
	format, err := DetectFormat(fileName)
	if err != nil {
		return nil, err
	}

	this.log.Info("file parsing started", "file", fileName, "format", format, "bytes", len(file))

	out := &app.ParsedFile{Name: fileName, Format: format}
	switch format {
	case app.FormatCSV:
		rows, err := readCSV(file)
		if err != nil {
			return nil, err
		}
		out.Sheets = []app.Sheet{{Rows: rows}}
	case app.FormatWorkbook:
		sheets, err := readWorkbook(file)
		if err != nil {
			return nil, err
		}
		out.Sheets = sheets
	}

	this.log.Info("file parsing completed", "file", fileName, "sheets", len(out.Sheets))
	return out, nil
}

func (this *ExcelParserService) PickDataTable(file *app.ParsedFile) (*app.ParseTableResult, error) {
	if file.Format == app.FormatCSV {
		if len(file.Sheets) == 0 || len(file.Sheets[0].Rows) == 0 {
			return nil, app.ErrEmptyResult
		}
		rows := file.Sheets[0].Rows
		match, err := LocateHeader(rows, this.maxScan)
		if err != nil {
			return nil, err
		}
		res := buildTable("", rows, match)
		this.logPicked(res)
		return res, nil
	}

	sheet, match, err := pickDataSheet(file.Sheets, this.maxScan)
	if err != nil {
		return nil, err
	}
	res := buildTable(sheet.Name, sheet.Rows, match)
	this.logPicked(res)
	return res, nil
}

func (this *ExcelParserService) GoalsSheet(file *app.ParsedFile) (app.RawTable, bool) {
	if file.Format != app.FormatWorkbook {
		return nil, false
	}
	for _, s := range file.Sheets {
		if isGoalSheet(s.Name) {
			return s.Rows, true
		}
	}
	return nil, false
}

func (this *ExcelParserService) logPicked(res *app.ParseTableResult) {
	this.log.Info("data table located",
		"sheet", res.SheetName,
		"headerRow", res.HeaderRow,
		"score", res.Score,
		"header", res.Header,
		"rowCount", len(res.Rows))
}

func mb(n int64) float64 {
	return float64(n) / (1 << 20)
}
