package appconfig

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seichi.click/gamedata-translator/internal/app/appcontext"
)

func TestParseReadsEnvironment(t *testing.T) {
	t.Setenv("GAME_DATA_SERVER_GRPC_ENDPOINT_URL", "http://game-data-server:80")
	t.Setenv("SERVICE_ADDRESS", ":8080")
	t.Setenv("DEV_OPS_ADDRESS", ":9090")
	t.Setenv("GAME_DATA_DIAL_TIMEOUT", "3s")
	t.Setenv("DEV_MODE", "true")

	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)

	assert.Equal(t, "http://game-data-server:80", conf.GameDataServerGrpcEndpointURL)
	assert.Equal(t, ":8080", conf.ServiceAddress)
	assert.Equal(t, ":9090", conf.DevOpsAddress)
	assert.Equal(t, 3*time.Second, conf.GameDataDialTimeout)
	assert.True(t, conf.DevMode)
	assert.Equal(t, appcontext.EnvServer, conf.AppContext.Env)
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("GAME_DATA_SERVER_GRPC_ENDPOINT_URL", "game-data-server:80")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, ":80", conf.ServiceAddress)
	assert.Empty(t, conf.DevOpsAddress)
	assert.Equal(t, 10*time.Second, conf.GameDataDialTimeout)
	assert.Equal(t, 60*time.Second, conf.HTTPServerShutdownTimeout)
	assert.Equal(t, []string{"jaeger"}, conf.TracingExporters)
	assert.Equal(t, []string{"::1", "127.0.0.1", "10.0.0.0/8"}, conf.TrustedProxies)
	assert.False(t, conf.DevMode)
}

func TestParseRequiresGameDataEndpoint(t *testing.T) {
	// Setenv registers the restore; the check itself needs the variable to
	// be fully unset, since a set-but-empty value satisfies required.
	t.Setenv("GAME_DATA_SERVER_GRPC_ENDPOINT_URL", "placeholder")
	_ = os.Unsetenv("GAME_DATA_SERVER_GRPC_ENDPOINT_URL")

	_, err := Parse(appcontext.Declare(appcontext.EnvServer))
	assert.Error(t, err)
}
