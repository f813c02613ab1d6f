package bootstrap

import (
	"go.uber.org/fx"

	dashboard_module "github.com/init-pkg/rework-tracker/internal/app/dashboard"
	excel_parser_module "github.com/init-pkg/rework-tracker/internal/app/excel-parser"
	ingest_module "github.com/init-pkg/rework-tracker/internal/app/ingest"
	insights_module "github.com/init-pkg/rework-tracker/internal/app/insights"
	record_search_module "github.com/init-pkg/rework-tracker/internal/app/record-search"
)

func appOptions() fx.Option {
	return fx.Options(
		excel_parser_module.Register(),
		ingest_module.Register(),
		dashboard_module.Register(),
		insights_module.Register(),
		record_search_module.Register(),
	)
}
