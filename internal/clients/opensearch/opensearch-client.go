package opensearch_client

import (
	"crypto/tls"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/init-pkg/rework-tracker/internal/config"
)

// New returns nil without error when no addresses are configured.
func New(cfg *config.Config) (*opensearchapi.Client, error) {
	oc := cfg.Clients.OpenSearch
	if len(oc.Addresses) == 0 {
		return nil, nil
	}

	return opensearchapi.NewClient(
		opensearchapi.Config{
			Client: opensearch.Config{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{InsecureSkipVerify: oc.Insecure},
				},
				Addresses: oc.Addresses,
				Username:  oc.Username,
				Password:  oc.Password,
			},
		},
	)
}
