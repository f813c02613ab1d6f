package dashboard_service

import (
	"log/slog"

	"github.com/init-pkg/nova/errs"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/metrics"
)

const (
	topCauses  = 10
	topDrivers = 10

	noDataText     = "No data loaded. Please upload a CSV file."
	noMatchingText = "No records match your filters."
)

type DatasetMeta struct {
	Loaded   bool   `json:"loaded"`
	Records  int    `json:"records"`
	Filtered int    `json:"filtered"`
	BatchID  string `json:"batchId,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Payload is everything the dashboard renders for one filter selection.
type Payload struct {
	Dataset     DatasetMeta            `json:"dataset"`
	Query       dtos.DashboardQuery    `json:"query"`
	Summary     metrics.Summary        `json:"summary"`
	Mix         metrics.DispositionMix `json:"mix"`
	RootCauses  []metrics.CauseCount   `json:"rootCauses"`
	CostSeries  []metrics.CostBucket   `json:"costSeries"`
	Drivers     []metrics.DriverRow    `json:"drivers"`
	Goals       []metrics.GoalResult   `json:"goals"`
	ActiveGoals models.Goals           `json:"activeGoals"`
	Locations   []string               `json:"locations"`
	Notice      *dtos.Notice           `json:"notice,omitempty"`
}

type DashboardService struct {
	log     *slog.Logger
	dataset app.DatasetReader
}

func New(log *slog.Logger, dataset app.DatasetReader) *DashboardService {
	return &DashboardService{log: log, dataset: dataset}
}

// Selection is the held dataset split into the full batch and the filtered view.
type Selection struct {
	Snapshot models.Snapshot
	Filtered []models.CanonicalRecord
	Goals    models.Goals
}

func (this *DashboardService) Select(q dtos.DashboardQuery) (*Selection, error) {
	filter, err := ParseFilter(q)
	if err != nil {
		return nil, err
	}
	snap := this.dataset.Snapshot()
	return &Selection{
		Snapshot: snap,
		Filtered: filter.Apply(snap.Records),
		Goals:    metrics.EffectiveGoals(snap.Records, snap.Goals),
	}, nil
}

func (this *DashboardService) Build(q dtos.DashboardQuery) (*Payload, errs.Error) {
	sel, err := this.Select(q)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	snap, filtered := sel.Snapshot, sel.Filtered

	q.Granularity = string(metrics.ParseGranularity(q.Granularity))
	q.Sort = string(metrics.ParseDriverSort(q.Sort))

	summary := metrics.Summarize(filtered)
	out := &Payload{
		Dataset: DatasetMeta{
			Loaded:   len(snap.Records) > 0,
			Records:  len(snap.Records),
			Filtered: len(filtered),
			BatchID:  snap.BatchID,
			Source:   snap.Source,
		},
		Query:       q,
		Summary:     summary,
		Mix:         metrics.Mix(summary, filtered),
		RootCauses:  metrics.RootCauseBreakdown(filtered, topCauses),
		CostSeries:  metrics.CostSeries(filtered, metrics.Granularity(q.Granularity)),
		Drivers:     metrics.DefectDrivers(filtered, metrics.DriverSort(q.Sort), topDrivers),
		Goals:       metrics.GoalReport(snap.Records, filtered, sel.Goals),
		ActiveGoals: sel.Goals,
		Locations:   metrics.Locations(snap.Records),
	}

	switch {
	case len(snap.Records) == 0:
		n := dtos.NewNotice(dtos.NoticeError, noDataText)
		out.Notice = &n
	case len(filtered) == 0:
		n := dtos.NewNotice(dtos.NoticeError, noMatchingText)
		out.Notice = &n
	}

	this.log.Debug("dashboard built", "records", len(snap.Records), "filtered", len(filtered), "granularity", q.Granularity)
	return out, nil
}

func (this *DashboardService) Records(q dtos.DashboardQuery) ([]models.CanonicalRecord, errs.Error) {
	sel, err := this.Select(q)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	return sel.Filtered, nil
}
