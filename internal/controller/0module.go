package controller

import (
	"go.uber.org/fx"

	controllermeta "seichi.click/gamedata-translator/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (metrics)
		fx.Invoke(RegisterMetrics),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
