package httpserver

import (
	"github.com/felixge/fgprof"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seichi.click/gamedata-translator/internal/app/appconfig"
)

// DevOpsApp is the fiber app listening on DevOpsAddress. It serves this
// process's own telemetry (the seichitranslator_* metrics, Go runtime
// collectors and profiling endpoints) and is only reachable intra-cluster.
type DevOpsApp struct {
	*fiber.App
}

func CreateDevOps(conf *appconfig.Config) DevOpsApp {
	app := fiber.New(fiber.Config{
		AppName:               "Seichi GameData Translator DevOps",
		DisableStartupMessage: true,
		IdleTimeout:           conf.HTTPServerShutdownTimeout,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Use(pprof.New())
	app.Get("/debug/fgprof", adaptor.HTTPHandler(fgprof.Handler()))

	return DevOpsApp{
		App: app,
	}
}
