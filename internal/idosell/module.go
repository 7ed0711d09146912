package idosell

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"idosell",
		fx.Provide(NewClient),
	)
}
