package internal

import (
	"context"

	"orders_report/internal/cli"
	"orders_report/internal/config"
	"orders_report/internal/idosell"
	"orders_report/internal/llm"
	"orders_report/internal/logging"
	"orders_report/internal/mailer"
	"orders_report/internal/report"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

// Run loads and validates configuration before anything touches the network,
// then assembles the app and executes one report run.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	var runner *cli.Runner

	app := fx.New(
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(cfg),
		logging.Module(),
		idosell.Module(),
		mailer.Module(),
		llm.Module(),
		report.Module(),
		cli.Module(),
		fx.Provide(
			func(c *idosell.Client) report.OrderSource { return c },
			func(m *mailer.Mailer) report.Notifier { return m },
			func(c *llm.Client) report.Commentator { return c },
		),
		fx.Populate(&runner),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	return runner.Execute()
}
