package server

import (
	"go.uber.org/fx"

	"seichi.click/gamedata-translator/internal/server/httpserver"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(httpserver.CreateDevOps))
}
