package openai_client

import (
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/init-pkg/rework-tracker/internal/config"
)

// New builds the client used by the openai insights provider. Calls are already bounded
// by the insights timeout, so a single retry is enough.
func New(cfg *config.Config) *openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.Clients.OpenAI.ApiKey),
		option.WithMaxRetries(1),
	}
	if cfg.Clients.OpenAI.BaseUrl != "" {
		opts = append(opts, option.WithBaseURL(cfg.Clients.OpenAI.BaseUrl))
	}

	var cl = openai.NewClient(opts...)
	return &cl
}
