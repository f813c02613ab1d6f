package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("INSIGHTS_PROVIDER", "local")
	t.Setenv("CONFIG_PATH", "")

	require.NoError(t, fx.ValidateApp(options()))
}
