package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"seichi.click/gamedata-translator/internal/app"
	"seichi.click/gamedata-translator/internal/app/appconfig"
	"seichi.click/gamedata-translator/internal/app/appcontext"
	"seichi.click/gamedata-translator/internal/server/httpserver"
)

// Run assembles the fx application and blocks until the process receives a
// termination signal.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer),
		fx.Invoke(serve),
		fx.Invoke(serveDevOps),
	).Run()
}

func serve(app *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return app.Shutdown()
		},
	})
}

func serveDevOps(devops httpserver.DevOpsApp, conf *appconfig.Config, lc fx.Lifecycle) {
	if conf.DevOpsAddress == "" {
		log.Info().Msg("devops server is disabled: no listen address configured")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.DevOpsAddress)
			if err != nil {
				return err
			}

			go func() {
				if err := devops.Listener(ln); err != nil {
					log.Error().Err(err).Msg("devops server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return devops.Shutdown()
		},
	})
}
