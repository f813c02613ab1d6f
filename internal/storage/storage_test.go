package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/init-pkg/rework-tracker/domain/app"
	"github.com/init-pkg/rework-tracker/internal/config"
	memory_store "github.com/init-pkg/rework-tracker/internal/storage/memory"
)

func testConfig(driver, dsn string) *config.Config {
	cfg := config.Default()
	cfg.Store.Driver = driver
	cfg.Store.DSN = dsn
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func exerciseStore(t *testing.T, store app.BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("first")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", string(got))

	require.NoError(t, store.Remove(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing a missing key is fine
	require.NoError(t, store.Remove(ctx, "k"))
}

func TestMemoryStore(t *testing.T) {
	store, err := Open(context.Background(), testConfig("memory", ""), discard())
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	store := memory_store.New()

	blob := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", blob))
	blob[0] = 'z'

	got, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "blobs.db")
	store, err := Open(context.Background(), testConfig("sqlite", dsn), discard())
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "blobs.db")
	cfg := testConfig("sqlite", dsn)

	first, err := Open(context.Background(), cfg, discard())
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "k", []byte("kept")))
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), cfg, discard())
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := second.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "kept", string(got))
}

func TestQuota(t *testing.T) {
	ctx := context.Background()
	store := WithQuota(memory_store.New(), 4)

	require.NoError(t, store.Set(ctx, "k", []byte("1234")))

	err := store.Set(ctx, "k", []byte("12345"))
	require.ErrorIs(t, err, app.ErrQuotaExceeded)

	// the earlier blob survives a refused write
	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1234", string(got))
}

func TestQuotaDisabled(t *testing.T) {
	inner := memory_store.New()
	assert.Same(t, app.BlobStore(inner), WithQuota(inner, 0))
}

func TestUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), testConfig("etcd", ""), discard())
	assert.Error(t, err)
}
