package record_search_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/init-pkg/nova/errs"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
	"github.com/init-pkg/rework-tracker/internal/config"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var searchFields = []string{"description^2", "rootCause^2", "itemType", "location", "disposition", "workOrderId"}

// SearchResult is one matching record of the held batch.
type SearchResult struct {
	Record     models.CanonicalRecord `json:"record"`
	Confidence float64                `json:"confidence"`
}

type document struct {
	BatchID string `json:"batchId"`
	Row     int    `json:"row"`
	models.CanonicalRecord
}

// RecordSearchService keeps the held batch searchable in OpenSearch. Without a client
// indexing is skipped and Search reports ErrSearchDisabled.
type RecordSearchService struct {
	log     *slog.Logger
	client  *opensearchapi.Client
	index   string
	dataset app.DatasetReader
}

var _ app.RecordIndexer = &RecordSearchService{}

func New(cfg *config.Config, log *slog.Logger, client *opensearchapi.Client, dataset app.DatasetReader) *RecordSearchService {
	return &RecordSearchService{
		log:     log,
		client:  client,
		index:   cfg.Clients.OpenSearch.Index,
		dataset: dataset,
	}
}

func (this *RecordSearchService) Enabled() bool {
	return this.client != nil
}

// Index bulk-loads the batch. Documents of older batches are filtered out at query
// time and dropped by Clear.
func (this *RecordSearchService) Index(ctx context.Context, batchID string, records []models.CanonicalRecord) error {
	if !this.Enabled() || len(records) == 0 {
		return nil
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for i, r := range records {
		meta := map[string]any{"index": map[string]any{"_index": this.index, "_id": fmt.Sprintf("%s-%d", batchID, i)}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(document{BatchID: batchID, Row: i, CanonicalRecord: r}); err != nil {
			return err
		}
	}

	resp, err := this.client.Bulk(ctx, opensearchapi.BulkReq{
		Index: this.index,
		Body:  &body,
	})
	if err != nil {
		return fmt.Errorf("bulk index %s: %w", this.index, err)
	}
	if resp.Errors {
		return fmt.Errorf("bulk index %s: some documents were rejected", this.index)
	}

	this.log.Info("records indexed", "index", this.index, "batch", batchID, "records", len(records))
	return nil
}

func (this *RecordSearchService) Clear(ctx context.Context) error {
	if !this.Enabled() {
		return nil
	}
	_, err := this.client.Document.DeleteByQuery(ctx, opensearchapi.DocumentDeleteByQueryReq{
		Indices: []string{this.index},
		Body:    strings.NewReader(`{"query":{"match_all":{}}}`),
	})
	if err != nil {
		return fmt.Errorf("clear index %s: %w", this.index, err)
	}
	return nil
}

// Search runs a free-text query against the records of the held batch.
func (this *RecordSearchService) Search(ctx context.Context, q string, limit int) ([]SearchResult, errs.Error) {
	if !this.Enabled() {
		return nil, errs.WrapAppError(app.ErrSearchDisabled, &errs.ErrorOpts{})
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []SearchResult{}, nil
	}
	batchID := this.dataset.Snapshot().BatchID
	if batchID == "" {
		return []SearchResult{}, nil
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	query := map[string]any{
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     q,
						"fields":    searchFields,
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"batchId.keyword": batchID},
				},
			},
		},
	}
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{})
	}

	searchResp, err := this.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{this.index},
		Body:    bytes.NewReader(queryJSON),
	})
	if err != nil {
		return nil, errs.WrapAppError(fmt.Errorf("search index %s: %w", this.index, err), &errs.ErrorOpts{})
	}

	results := make([]SearchResult, 0, len(searchResp.Hits.Hits))
	for _, hit := range searchResp.Hits.Hits {
		var doc document
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		results = append(results, SearchResult{
			Record:     doc.CanonicalRecord,
			Confidence: float64(hit.Score),
		})
	}
	return results, nil
}
