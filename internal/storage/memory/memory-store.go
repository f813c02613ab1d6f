package memory_store

import (
	"context"
	"slices"
	"sync"

	"github.com/init-pkg/rework-tracker/domain/app"
)

type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ app.BlobStore = &Store{}

func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (this *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	this.mu.RLock()
	defer this.mu.RUnlock()

	b, ok := this.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(b), true, nil
}

func (this *Store) Set(_ context.Context, key string, blob []byte) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.blobs[key] = slices.Clone(blob)
	return nil
}

func (this *Store) Remove(_ context.Context, key string) error {
	this.mu.Lock()
	defer this.mu.Unlock()

	delete(this.blobs, key)
	return nil
}

func (this *Store) Close() error {
	return nil
}
