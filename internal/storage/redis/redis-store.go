package redis_store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/init-pkg/rework-tracker/domain/app"
)

type Store struct {
	rdb *redis.Client
}

var _ app.BlobStore = &Store{}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (this *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := this.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (this *Store) Set(ctx context.Context, key string, blob []byte) error {
	if err := this.rdb.Set(ctx, key, blob, 0).Err(); err != nil {
		if isOutOfMemory(err) {
			return fmt.Errorf("redis set %s: %w: %v", key, app.ErrQuotaExceeded, err)
		}
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (this *Store) Remove(ctx context.Context, key string) error {
	if err := this.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (this *Store) Close() error {
	return this.rdb.Close()
}

// maxmemory reached: "OOM command not allowed when used memory > 'maxmemory'".
func isOutOfMemory(err error) bool {
	return strings.HasPrefix(err.Error(), "OOM ")
}
