package record_search_service

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/models"
	opensearch_client "github.com/init-pkg/rework-tracker/internal/clients/opensearch"
	"github.com/init-pkg/rework-tracker/internal/config"
)

type staticDataset models.Snapshot

func (s staticDataset) Snapshot() models.Snapshot { return models.Snapshot(s) }

type fakeCluster struct {
	mu       sync.Mutex
	bulk     []string
	searches []map[string]any
	cleared  int
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		sc := bufio.NewScanner(r.Body)
		for sc.Scan() {
			f.bulk = append(f.bulk, sc.Text())
		}
		io.WriteString(w, `{"took":1,"errors":false,"items":[]}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		f.searches = append(f.searches, body)
		io.WriteString(w, `{"took":1,"timed_out":false,"_shards":{"total":1,"successful":1,"skipped":0,"failed":0},
			"hits":{"total":{"value":1,"relation":"eq"},"max_score":1.5,"hits":[
			{"_index":"rework-records","_id":"b1-0","_score":1.5,"_source":{"batchId":"b1","row":0,"holdDate":"2024-01-05","description":"Torn label","location":"North","rootCause":"Mislabel","casesProduced":10}}]}}`)
	case strings.HasSuffix(r.URL.Path, "/_delete_by_query"):
		f.cleared++
		io.WriteString(w, `{"took":1,"timed_out":false,"total":0,"deleted":0,"batches":0,"version_conflicts":0,"noops":0,"failures":[]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, addr string, batchID string) *RecordSearchService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Clients.OpenSearch.Index = "rework-records"
	if addr != "" {
		cfg.Clients.OpenSearch.Addresses = []string{addr}
	}
	client, err := opensearch_client.New(cfg)
	require.NoError(t, err)
	return New(cfg, discard(), client, staticDataset(models.Snapshot{BatchID: batchID}))
}

func TestDisabledWithoutAddresses(t *testing.T) {
	svc := newService(t, "", "b1")
	assert.False(t, svc.Enabled())

	require.NoError(t, svc.Index(context.Background(), "b1", []models.CanonicalRecord{{HoldDate: "2024-01-05"}}))
	require.NoError(t, svc.Clear(context.Background()))

	_, e := svc.Search(context.Background(), "label", 5)
	assert.NotNil(t, e)
}

func TestIndexWritesOneActionPerRecord(t *testing.T) {
	cluster := &fakeCluster{}
	srv := httptest.NewServer(cluster)
	defer srv.Close()

	svc := newService(t, srv.URL, "b1")
	records := []models.CanonicalRecord{
		{HoldDate: "2024-01-05", Description: "Torn label"},
		{HoldDate: "2024-01-06", Description: "Seal leak"},
	}
	require.NoError(t, svc.Index(context.Background(), "b1", records))

	require.Len(t, cluster.bulk, 4)
	assert.Contains(t, cluster.bulk[0], `"_id":"b1-0"`)
	assert.Contains(t, cluster.bulk[1], `"batchId":"b1"`)
	assert.Contains(t, cluster.bulk[3], `"description":"Seal leak"`)
}

func TestSearchFiltersToHeldBatch(t *testing.T) {
	cluster := &fakeCluster{}
	srv := httptest.NewServer(cluster)
	defer srv.Close()

	svc := newService(t, srv.URL, "b1")
	res, e := svc.Search(context.Background(), "label", 500)
	require.Nil(t, e)
	require.Len(t, res, 1)
	assert.Equal(t, "Torn label", res[0].Record.Description)
	assert.InDelta(t, 1.5, res[0].Confidence, 1e-6)

	require.Len(t, cluster.searches, 1)
	body := cluster.searches[0]
	assert.EqualValues(t, maxLimit, body["size"])
	filter := body["query"].(map[string]any)["bool"].(map[string]any)["filter"].(map[string]any)
	assert.Equal(t, map[string]any{"batchId.keyword": "b1"}, filter["term"])
}

func TestSearchShortCircuits(t *testing.T) {
	cluster := &fakeCluster{}
	srv := httptest.NewServer(cluster)
	defer srv.Close()

	res, e := newService(t, srv.URL, "b1").Search(context.Background(), "   ", 5)
	require.Nil(t, e)
	assert.Empty(t, res)

	res, e = newService(t, srv.URL, "").Search(context.Background(), "label", 5)
	require.Nil(t, e)
	assert.Empty(t, res)

	assert.Empty(t, cluster.searches)
}

func TestClearDeletesByQuery(t *testing.T) {
	cluster := &fakeCluster{}
	srv := httptest.NewServer(cluster)
	defer srv.Close()

	require.NoError(t, newService(t, srv.URL, "b1").Clear(context.Background()))
	assert.Equal(t, 1, cluster.cleared)
}
