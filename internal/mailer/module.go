package mailer

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module(
		"mailer",
		fx.Provide(New),
	)
}
