package config

import "go.uber.org/fx"

// Module supplies an already loaded and validated configuration, so a bad
// environment is rejected before the container starts any component.
func Module(cfg Config) fx.Option {
	return fx.Module(
		"config",
		fx.Supply(cfg),
	)
}
