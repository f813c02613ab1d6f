package header_mapping_service

import (
	"log/slog"
)

// FieldMapping describes one resolved header column.
type FieldMapping struct {
	ExcelHeader string `json:"excel_header"`
	Field       Field  `json:"field"`
	Index       int    `json:"index"`
}

type HeaderMappingService struct {
	log *slog.Logger
}

func New(log *slog.Logger) *HeaderMappingService {
	return &HeaderMappingService{log: log}
}

func (s *HeaderMappingService) Resolve(header []string) ColumnMap {
	cols := ResolveColumns(header)

	missing := make([]string, 0)
	for _, f := range []Field{FieldCasesProduced, FieldCasesReworked, FieldDisposition, FieldCost} {
		if !cols.Has(f) {
			missing = append(missing, f.String())
		}
	}
	s.log.Info("columns resolved", "columns", cols, "dateColumn", cols.DateColumn())
	if len(missing) > 0 {
		s.log.Warn("columns not found, defaults will be used", "fields", missing)
	}

	return cols
}

// BuildFieldMappings lists resolved columns in field order.
func (s *HeaderMappingService) BuildFieldMappings(header []string, cols ColumnMap) []FieldMapping {
	out := make([]FieldMapping, 0, len(cols))
	for _, f := range allFields {
		i := cols.Index(f)
		if i < 0 || i >= len(header) {
			continue
		}
		out = append(out, FieldMapping{ExcelHeader: header[i], Field: f, Index: i})
	}
	return out
}
