package ingest_service

import (
	"errors"
	"fmt"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
	goals_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/goals"
	header_mapping_service "github.com/init-pkg/rework-tracker/internal/app/mapping/header"
	"github.com/init-pkg/rework-tracker/internal/app/normalizer"
)

// Pipeline turns one file into canonical records plus any goal values it carries.
type Pipeline struct {
	parser     app.TableParserService
	headers    *header_mapping_service.HeaderMappingService
	goals      *goals_mapping_service.Service
	normalizer *normalizer.Service
}

func NewPipeline(
	parser app.TableParserService,
	headers *header_mapping_service.HeaderMappingService,
	goals *goals_mapping_service.Service,
	normalizer *normalizer.Service,
) *Pipeline {
	return &Pipeline{parser: parser, headers: headers, goals: goals, normalizer: normalizer}
}

type loadResult struct {
	format  app.FileFormat
	table   *app.ParseTableResult
	records []models.CanonicalRecord
	// goals is set when the file carried a goals table.
	goals models.GoalOverrides
	// goalsOnly means the file had no data table but did carry goals.
	goalsOnly bool
}

// Load runs parse, table pick, column resolution and row normalization. A CSV without a
// usable date column is read once more as a goals table before the error is returned.
func (this *Pipeline) Load(fileName string, data []byte) (*loadResult, error) {
	file, err := this.parser.Parse(fileName, data)
	if err != nil {
		return nil, err
	}

	table, err := this.parser.PickDataTable(file)
	if err != nil {
		return this.goalsFallback(file, err)
	}

	cols := this.headers.Resolve(table.Header)
	if cols.DateColumn() < 0 {
		return this.goalsFallback(file, fmt.Errorf("header row %d: %w", table.HeaderRow+1, app.ErrMissingDateColumn))
	}

	res := &loadResult{format: file.Format, table: table}
	res.records = this.normalizer.Normalize(table, cols)
	if len(res.records) == 0 {
		return nil, app.ErrEmptyResult
	}

	if sheet, ok := this.parser.GoalsSheet(file); ok {
		if g := this.goals.Extract(sheet); len(g) > 0 {
			res.goals = g
		}
	}
	return res, nil
}

func (this *Pipeline) goalsFallback(file *app.ParsedFile, cause error) (*loadResult, error) {
	if file.Format != app.FormatCSV || !errors.Is(cause, app.ErrMissingDateColumn) || len(file.Sheets) == 0 {
		return nil, cause
	}
	g := this.goals.Extract(file.Sheets[0].Rows)
	if len(g) == 0 {
		return nil, cause
	}
	return &loadResult{format: file.Format, goals: g, goalsOnly: true}, nil
}

// nextGoals decides the active goals after a load. A goals table overrides the defaults;
// a CSV data load without one resets them; a workbook without one keeps the current goals.
func nextGoals(current models.Goals, res *loadResult) models.Goals {
	switch {
	case res.goalsOnly:
		return res.goals.ApplyTo(current)
	case len(res.goals) > 0:
		return res.goals.ApplyTo(models.DefaultGoals())
	case res.format == app.FormatCSV:
		return models.DefaultGoals()
	default:
		return current
	}
}
