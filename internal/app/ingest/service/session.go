package ingest_service

import (
	"sync"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/domain/models"
)

// Session owns the held dataset and the active goals. Every change swaps the whole
// snapshot, so readers never see a partial batch.
type Session struct {
	mu   sync.RWMutex
	snap models.Snapshot

	// loading admits a single ingestion at a time.
	loading sync.Mutex
}

var _ app.DatasetReader = &Session{}

func NewSession() *Session {
	return &Session{snap: models.Snapshot{Goals: models.DefaultGoals()}}
}

func (this *Session) Snapshot() models.Snapshot {
	this.mu.RLock()
	defer this.mu.RUnlock()
	return this.snap
}

// TryBegin reports false while another ingestion holds the session.
func (this *Session) TryBegin() bool {
	return this.loading.TryLock()
}

func (this *Session) End() {
	this.loading.Unlock()
}

func (this *Session) Replace(snap models.Snapshot) {
	this.mu.Lock()
	defer this.mu.Unlock()
	this.snap = snap
}

func (this *Session) SetGoals(goals models.Goals) models.Snapshot {
	this.mu.Lock()
	defer this.mu.Unlock()
	this.snap.Goals = goals
	return this.snap
}

// ClearRecords drops the batch and keeps the active goals.
func (this *Session) ClearRecords() models.Snapshot {
	this.mu.Lock()
	defer this.mu.Unlock()
	this.snap = models.Snapshot{Goals: this.snap.Goals}
	return this.snap
}
