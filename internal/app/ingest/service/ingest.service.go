package ingest_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/init-pkg/nova/errs"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/dtos"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/app/metrics"
	"github.com/init-pkg/rework-tracker/internal/config"
)

const quotaWarning = "The dataset is too large to keep between restarts; upload the file again after a restart."

type IngestService struct {
	log      *slog.Logger
	parser   app.TableParserService
	pipeline *Pipeline
	session  *Session
	store    app.BlobStore
	events   app.EventPublisher
	indexer  app.RecordIndexer
	key      string
	now      func() time.Time
}

var _ app.IngestService = &IngestService{}

func New(
	cfg *config.Config,
	log *slog.Logger,
	parser app.TableParserService,
	pipeline *Pipeline,
	session *Session,
	store app.BlobStore,
	events app.EventPublisher,
	indexer app.RecordIndexer,
) *IngestService {
	return &IngestService{
		log:      log,
		parser:   parser,
		pipeline: pipeline,
		session:  session,
		store:    store,
		events:   events,
		indexer:  indexer,
		key:      cfg.Ingest.StorageKey,
		now:      time.Now,
	}
}

// Hydrate restores the persisted snapshot. An unreadable blob leaves the session empty.
func (this *IngestService) Hydrate(ctx context.Context) error {
	blob, ok, err := this.store.Get(ctx, this.key)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		this.log.Info("no stored dataset")
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		this.log.Warn("stored dataset is unreadable, starting empty", "error", err)
		return nil
	}
	if snap.Goals == (models.Goals{}) {
		snap.Goals = models.DefaultGoals()
	}
	this.session.Replace(snap)
	this.log.Info("dataset restored", "batch", snap.BatchID, "records", len(snap.Records), "source", snap.Source)
	return nil
}

func (this *IngestService) Ingest(ctx context.Context, fileName string, size int64, r io.Reader) (*dtos.IngestOutcome, errs.Error) {
	if !this.session.TryBegin() {
		return this.fail(fileName, app.ErrIngestInProgress)
	}
	defer this.session.End()

	if err := this.parser.CheckSize(size); err != nil {
		return this.fail(fileName, err)
	}

	data, err := io.ReadAll(io.LimitReader(r, size+1))
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	res, err := this.pipeline.Load(fileName, data)
	if err != nil {
		return this.fail(fileName, err)
	}

	current := this.session.Snapshot()
	goals := nextGoals(current.Goals, res)

	if res.goalsOnly {
		snap := this.session.SetGoals(goals)
		out := &dtos.IngestOutcome{
			Status:       dtos.IngestGoalsOnly,
			FileName:     fileName,
			BatchID:      snap.BatchID,
			Records:      len(snap.Records),
			GoalsUpdated: true,
			Goals:        goals,
		}
		this.persist(ctx, snap, out)
		out.Notice = dtos.NewNotice(dtos.NoticeSuccess, fmt.Sprintf("Goals updated from %s; no data rows were loaded", fileName))
		this.publish(ctx, models.DatasetEvent{Type: models.EventGoalsUpdated, BatchID: snap.BatchID, Source: fileName, Records: len(snap.Records), Goals: &goals})
		return out, nil
	}

	snap := models.Snapshot{
		BatchID:  uuid.NewString(),
		Source:   fileName,
		LoadedAt: this.now().UTC(),
		Records:  res.records,
		Goals:    goals,
	}
	this.session.Replace(snap)

	out := &dtos.IngestOutcome{
		Status:       dtos.IngestLoaded,
		FileName:     fileName,
		BatchID:      snap.BatchID,
		Records:      len(snap.Records),
		SheetName:    res.table.SheetName,
		HeaderRow:    res.table.HeaderRow,
		GoalsUpdated: goals != current.Goals,
		Goals:        goals,
	}
	this.persist(ctx, snap, out)
	this.index(ctx, snap, out)
	out.Notice = dtos.NewNotice(dtos.NoticeSuccess, fmt.Sprintf("Successfully loaded %d records from %s", len(snap.Records), fileName))

	this.log.Info("dataset loaded", "file", fileName, "batch", snap.BatchID, "records", len(snap.Records), "persisted", out.Persisted)
	this.publish(ctx, models.DatasetEvent{Type: models.EventDatasetLoaded, BatchID: snap.BatchID, Source: fileName, Records: len(snap.Records)})
	if out.GoalsUpdated {
		this.publish(ctx, models.DatasetEvent{Type: models.EventGoalsUpdated, BatchID: snap.BatchID, Source: fileName, Records: len(snap.Records), Goals: &goals})
	}
	return out, nil
}

func (this *IngestService) Info() dtos.DatasetInfo {
	snap := this.session.Snapshot()
	info := dtos.DatasetInfo{
		Loaded:    len(snap.Records) > 0,
		Records:   len(snap.Records),
		BatchID:   snap.BatchID,
		Source:    snap.Source,
		Goals:     snap.Goals,
		Locations: metrics.Locations(snap.Records),
	}
	if !snap.LoadedAt.IsZero() {
		at := snap.LoadedAt
		info.LoadedAt = &at
	}
	return info
}

// Clear drops the held batch and its stored copy. Goals stay active.
func (this *IngestService) Clear(ctx context.Context) (*dtos.IngestOutcome, errs.Error) {
	if !this.session.TryBegin() {
		return this.fail("", app.ErrIngestInProgress)
	}
	defer this.session.End()

	prev := this.session.Snapshot()
	if err := this.store.Remove(ctx, this.key); err != nil {
		this.log.Error("stored dataset not removed, keeping held batch", "error", err)
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}
	snap := this.session.ClearRecords()
	if err := this.indexer.Clear(ctx); err != nil {
		this.log.Warn("search index not cleared", "error", err)
	}

	this.log.Info("dataset cleared", "batch", prev.BatchID, "records", len(prev.Records))
	this.publish(ctx, models.DatasetEvent{Type: models.EventDatasetCleared, BatchID: prev.BatchID})

	return &dtos.IngestOutcome{
		Status: dtos.IngestCleared,
		Goals:  snap.Goals,
		Notice: dtos.NewNotice(dtos.NoticeInfo, "All data cleared"),
	}, nil
}

// fail reports a recoverable failure. The held dataset is left untouched.
func (this *IngestService) fail(fileName string, err error) (*dtos.IngestOutcome, errs.Error) {
	kind := app.ErrorKind(err)
	this.log.Warn("file not loaded", "file", fileName, "kind", kind, "error", err)

	snap := this.session.Snapshot()
	out := &dtos.IngestOutcome{
		Status:   dtos.IngestFailed,
		Kind:     kind,
		FileName: fileName,
		BatchID:  snap.BatchID,
		Records:  len(snap.Records),
		Goals:    snap.Goals,
		Notice:   dtos.NewNotice(dtos.NoticeError, failureText(fileName, err)),
	}
	return out, errs.WrapAppError(err, &errs.ErrorOpts{})
}

func failureText(fileName string, err error) string {
	switch {
	case errors.Is(err, app.ErrIngestInProgress):
		return "Another file is still loading; try again when it finishes"
	case errors.Is(err, app.ErrEmptyResult):
		return fmt.Sprintf("%s is empty or has no usable data rows", fileName)
	default:
		return fmt.Sprintf("Could not load %s: %v", fileName, err)
	}
}

// persist stores the snapshot. A full store only costs durability.
func (this *IngestService) persist(ctx context.Context, snap models.Snapshot, out *dtos.IngestOutcome) {
	blob, err := json.Marshal(snap)
	if err == nil {
		err = this.store.Set(ctx, this.key, blob)
	}
	switch {
	case err == nil:
		out.Persisted = true
	case errors.Is(err, app.ErrQuotaExceeded):
		this.log.Warn("dataset kept in memory only", "bytes", len(blob), "error", err)
		out.Warnings = append(out.Warnings, quotaWarning)
	default:
		this.log.Error("dataset not persisted", "error", err)
		out.Warnings = append(out.Warnings, "The dataset could not be saved: "+err.Error())
	}
}

func (this *IngestService) index(ctx context.Context, snap models.Snapshot, out *dtos.IngestOutcome) {
	if err := this.indexer.Index(ctx, snap.BatchID, snap.Records); err != nil {
		this.log.Warn("records not indexed for search", "batch", snap.BatchID, "error", err)
		out.Warnings = append(out.Warnings, "Record search is unavailable for this dataset")
	}
}

func (this *IngestService) publish(ctx context.Context, ev models.DatasetEvent) {
	ev.At = this.now().UTC()
	if err := this.events.Publish(ctx, ev); err != nil {
		this.log.Warn("event not published", "type", ev.Type, "error", err)
	}
}
