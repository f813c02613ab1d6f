package bootstrap

import (
	"go.uber.org/fx"

	opensearch_client "github.com/init-pkg/rework-tracker/internal/clients/opensearch"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			opensearch_client.New,
		),
	)
}
