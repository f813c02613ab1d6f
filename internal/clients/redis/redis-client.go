package redis_client

import (
	"github.com/redis/go-redis/v9"

	"github.com/init-pkg/rework-tracker/internal/config"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Clients.Redis.Addr,
		Password: cfg.Clients.Redis.Password,
		DB:       cfg.Clients.Redis.DB,
	})
}
