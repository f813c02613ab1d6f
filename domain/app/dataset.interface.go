package app

import (
	"context"
	"io"

	"github.com/init-pkg/nova/errs"

	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
)

// DatasetReader gives read access to the held dataset. The returned snapshot is never
// mutated after it is handed out.
type DatasetReader interface {
	Snapshot() models.Snapshot
}

type IngestService interface {
	// Ingest loads one uploaded file and replaces the held dataset on success. The
	// outcome is always returned, also alongside an error.
	Ingest(ctx context.Context, fileName string, size int64, r io.Reader) (*dtos.IngestOutcome, errs.Error)
	Info() dtos.DatasetInfo
	Clear(ctx context.Context) (*dtos.IngestOutcome, errs.Error)
}

// RecordIndexer mirrors the held dataset into a search backend.
type RecordIndexer interface {
	Index(ctx context.Context, batchID string, records []models.CanonicalRecord) error
	Clear(ctx context.Context) error
}

type InsightsProvider interface {
	Name() string
	Generate(ctx context.Context, req dtos.InsightsRequest) (*dtos.InsightsResponse, error)
}

// ProbedInsightsProvider can report liveness before it is asked.
type ProbedInsightsProvider interface {
	InsightsProvider
	Healthy(ctx context.Context) bool
}
