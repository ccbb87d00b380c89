package presenter

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("presenter", fx.Provide(
		NewPrometheus,
	))
}
