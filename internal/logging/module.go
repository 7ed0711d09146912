package logging

import (
	"context"
	"io"

	"orders_report/internal/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is a plain option set rather than an fx.Module so the decorated
// logger reaches every other module.
func Module() fx.Option {
	return fx.Options(
		fx.Provide(func(cfg config.Config) io.WriteCloser {
			return OpenLogFile(cfg.LogFile)
		}),
		fx.Decorate(func(base *zap.Logger, cfg config.Config, file io.WriteCloser) *zap.Logger {
			return AttachFileLogger(base, file, cfg.Debug)
		}),
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger, file io.WriteCloser) {
			if file == nil {
				return
			}
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					_ = logger.Sync()
					return file.Close()
				},
			})
		}),
	)
}
