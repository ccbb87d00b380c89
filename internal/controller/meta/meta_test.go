package meta

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/server/httpserver"
	"seichi.click/gamedata-translator/internal/service"
)

func newMetaApp(t *testing.T) *fiber.App {
	t.Helper()

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            ":0",
			TrustedProxies:            []string{"127.0.0.1"},
			HTTPServerShutdownTimeout: time.Minute,
		},
	}

	// a lazy connection is Idle until the first RPC, which is a healthy state
	conn, err := grpc.Dial("127.0.0.1:1", grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	app := httpserver.Create(conf)
	RegisterMeta(app, Meta{HealthService: service.NewHealth(conn)})
	RegisterIndex(app)
	return app
}

func TestMetaEndpoints(t *testing.T) {
	app := newMetaApp(t)

	t.Run("health", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/_/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bininfo", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "version")
		assert.Contains(t, string(body), "build")
	})

	t.Run("index", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "/metrics")
	})
}
