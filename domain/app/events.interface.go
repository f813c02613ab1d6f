package app

import (
	"context"

	"github.com/init-pkg/rework-tracker/domain/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.DatasetEvent) error
	Close() error
}
