package excel_parser_module

import (
	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/app"
	excel_parser_service "github.com/init-pkg/rework-tracker/internal/app/excel-parser/service"
	excel_parser_http_handler "github.com/init-pkg/rework-tracker/internal/app/excel-parser/transports/http"
	goals_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/goals"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer"
	"github.com/init-pkg/rework-tracker/internal/httpx"
)

// Register provides the parsing stages: table reading, column and goal mapping, row
// normalization.
func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(excel_parser_service.New, fx.As(new(app.TableParserService))),
		header_mapping_service.New,
		goals_mapping_service.New,
		normalizer.New,
		httpx.AsRouter(excel_parser_http_handler.New),
	)
}
