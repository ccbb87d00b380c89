package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/constant"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			ServiceAddress:            ":0",
			TrustedProxies:            []string{"127.0.0.1"},
			HTTPServerShutdownTimeout: time.Minute,
		},
	}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHandlerErrorsRenderFixedBody(t *testing.T) {
	app := Create(testConfig())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("connection refused to backend at 10.0.0.1:50051")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, fiber.MIMETextPlainCharsetUTF8, resp.Header.Get(fiber.HeaderContentType))

	b := body(t, resp)
	assert.Equal(t, InternalErrorBody, b, "error responses must carry the fixed body only")
	assert.NotContains(t, b, "connection refused", "upstream details must never leak to clients")
}

func TestWrappedHandlerErrorsStayOpaque(t *testing.T) {
	app := Create(testConfig())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.Wrap(errors.New("rpc error: code = Unavailable"), "fetching break counts")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, InternalErrorBody, body(t, resp))
}

func TestRouterStatusesPassThrough(t *testing.T) {
	app := Create(testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/definitely-missing", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEqual(t, InternalErrorBody, body(t, resp))
}

func TestResponsesCarryRequestID(t *testing.T) {
	app := Create(testConfig())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Header.Get(constant.RequestIDHeader))
}

func TestDevOpsServesSelfMetrics(t *testing.T) {
	devops := CreateDevOps(testConfig())

	resp, err := devops.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), 5000)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	b := body(t, resp)
	assert.Contains(t, b, "go_goroutines")
	assert.Contains(t, b, "seichitranslator_scrape_known_players")
}

func TestDevOpsServesPprofIndex(t *testing.T) {
	devops := CreateDevOps(testConfig())

	resp, err := devops.Test(httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil), 5000)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
