package sqlite_store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/init-pkg/rework-tracker/domain/app"
)

type Store struct {
	db *sqlx.DB
}

var _ app.BlobStore = &Store{}

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

func (this *Store) DB() *sql.DB {
	return this.db.DB
}

func (this *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := this.db.GetContext(ctx, &blob, `SELECT value FROM kv_blobs WHERE blob_key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get blob %s: %w", key, err)
	}
	return blob, true, nil
}

func (this *Store) Set(ctx context.Context, key string, blob []byte) error {
	_, err := this.db.ExecContext(ctx, `
		INSERT INTO kv_blobs (blob_key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (blob_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set blob %s: %w", key, err)
	}
	return nil
}

func (this *Store) Remove(ctx context.Context, key string) error {
	if _, err := this.db.ExecContext(ctx, `DELETE FROM kv_blobs WHERE blob_key = ?`, key); err != nil {
		return fmt.Errorf("remove blob %s: %w", key, err)
	}
	return nil
}

func (this *Store) Close() error {
	return this.db.Close()
}
