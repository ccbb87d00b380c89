package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/pkg/bininfo"
	"seichi.click/gamedata-translator/internal/pkg/middlewares"
	"seichi.click/gamedata-translator/internal/pkg/observability"
)

var (
	fiberpromOnce sync.Once
	fiberprom     *fiberprometheus.FiberPrometheus
)

func Create(conf *appconfig.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Seichi GameData Translator",
		ServerHeader: fmt.Sprintf("SeichiTranslator/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		Immutable:               true,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
	})

	app.Use(favicon.New())
	if conf.SentryDSN != "" {
		app.Use(fibersentry.New(fibersentry.Config{
			Repanic: true,
			Timeout: time.Second * 5,
		}))
	}
	middlewares.Logger(app)
	// the logger middleware injects RequestID into the context,
	// and we need an extra middleware to extract it and repopulate it into ctx.Locals
	app.Use(middlewares.RequestID())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))

	// The middleware records request metrics only: the exposition lives on
	// the devops app, since GET /metrics here is the translated player
	// statistics rather than this process's own telemetry.
	fiberpromOnce.Do(func() {
		fiberprom = fiberprometheus.New(observability.ServiceName)
	})
	app.Use(fiberprom.Middleware)

	if conf.TracingEnabled {
		app.Use(otelfiber.Middleware(otelfiber.WithServerName(observability.TracingServiceName)))
	}

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	}

	if conf.SentryDSN != "" {
		app.Use(middlewares.EnrichSentry())
	}

	return app
}
