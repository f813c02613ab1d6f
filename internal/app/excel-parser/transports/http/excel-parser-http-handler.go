package excel_parser_http_handler

import (
	"io"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

const previewRows = 20

var expectedFields = []header_mapping_service.Field{
	header_mapping_service.FieldDescription,
	header_mapping_service.FieldDisposition,
	header_mapping_service.FieldRootCause,
	header_mapping_service.FieldCasesProduced,
	header_mapping_service.FieldCasesReworked,
	header_mapping_service.FieldCost,
}

type ExcelParserHttpHandler struct {
	service app.TableParserService
	headers *header_mapping_service.HeaderMappingService
}

func New(service app.TableParserService, headers *header_mapping_service.HeaderMappingService) *ExcelParserHttpHandler {
	return &ExcelParserHttpHandler{service, headers}
}

func (this *ExcelParserHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/excel-parsers")

	app.Post("/preview", this.preview)
}

// preview shows the picked table and column mapping of an upload without loading it.
func (this *ExcelParserHttpHandler) preview(c fiber.Ctx) error {
	fh, err := httpx.UploadedFile(c)
	if err != nil {
		return httpx.BadRequest(c, err)
	}
	if err := this.service.CheckSize(fh.Size); err != nil {
		return httpx.Error(c, app.ErrorKind(err), err)
	}

	f, err := fh.Open()
	if err != nil {
		return httpx.BadRequest(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return httpx.BadRequest(c, err)
	}

	out, err := this.buildPreview(fh.Filename, data)
	if err != nil {
		return httpx.Error(c, app.ErrorKind(err), err)
	}
	return c.JSON(out)
}

func (this *ExcelParserHttpHandler) buildPreview(fileName string, data []byte) (*dtos.TablePreview, error) {
	file, err := this.service.Parse(fileName, data)
	if err != nil {
		return nil, err
	}
	table, err := this.service.PickDataTable(file)
	if err != nil {
		return nil, err
	}

	cols := this.headers.Resolve(table.Header)
	if cols.DateColumn() < 0 {
		return nil, app.ErrMissingDateColumn
	}

	out := &dtos.TablePreview{
		FileName:  fileName,
		Format:    string(file.Format),
		SheetName: table.SheetName,
		HeaderRow: table.HeaderRow,
		Score:     table.Score,
		Header:    table.Header,
		Columns:   make([]dtos.ColumnMapping, 0, len(cols)),
		Missing:   make([]string, 0),
		Rows:      table.Rows[:min(previewRows, len(table.Rows))],
		TotalRows: len(table.Rows),
	}
	for _, m := range this.headers.BuildFieldMappings(table.Header, cols) {
		out.Columns = append(out.Columns, dtos.ColumnMapping{Header: m.ExcelHeader, Field: m.Field.String(), Index: m.Index})
	}
	for _, f := range expectedFields {
		if !cols.Has(f) {
			out.Missing = append(out.Missing, f.String())
		}
	}
	return out, nil
}
