package app

import (
	"time"

	"go.uber.org/fx"

	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/app/appcontext"
	"seichi.click/gamedata-translator/internal/controller"
	"seichi.click/gamedata-translator/internal/infra"
	"seichi.click/gamedata-translator/internal/pkg/logger"
	"seichi.click/gamedata-translator/internal/pkg/observability"
	"seichi.click/gamedata-translator/internal/presenter"
	"seichi.click/gamedata-translator/internal/repo"
	"seichi.click/gamedata-translator/internal/server"
	"seichi.click/gamedata-translator/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Presenters
		presenter.Module(),

		// Global Singleton Inits: Keep those before controllers to ensure they are initialized
		// before controllers are registered as controllers are also fx#Invoke functions which
		// are called in the order of their registration.
		fx.Invoke(infra.SentryInit),
		fx.Invoke(observability.SetupTracing),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
