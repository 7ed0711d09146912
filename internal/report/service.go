package report

import (
	"context"
	"fmt"
	"time"

	"orders_report/internal/config"
	"orders_report/internal/period"

	"go.uber.org/zap"
)

// Report is one fully built daily report, ready to be delivered.
type Report struct {
	Window     period.Window
	Result     Result
	Commentary string
	Subject    string
	HTML       string
}

// Settings are the per-run knobs of the service.
type Settings struct {
	TopN            int
	Revenue         bool
	DefaultCurrency string
}

func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		TopN:            cfg.TopN,
		Revenue:         cfg.RevenueEnabled,
		DefaultCurrency: cfg.DefaultCurrency,
	}
}

type Service struct {
	orders      OrderSource
	notifier    Notifier
	commentator Commentator
	logger      *zap.Logger
}

func NewService(orders OrderSource, notifier Notifier, commentator Commentator, logger *zap.Logger) *Service {
	return &Service{
		orders:      orders,
		notifier:    notifier,
		commentator: commentator,
		logger:      logger.Named("report"),
	}
}

// Build fetches and aggregates the window and renders the email. Any fetch
// error aborts the run; commentary problems only drop the commentary.
func (s *Service) Build(ctx context.Context, window period.Window, settings Settings) (Report, error) {
	s.logger.Info("building report",
		zap.String("from", window.Begin()),
		zap.String("to", window.Finish()),
		zap.Int("top_n", settings.TopN),
		zap.Bool("revenue", settings.Revenue),
	)

	orders, err := s.orders.FetchAll(ctx, window)
	if err != nil {
		return Report{}, fmt.Errorf("fetch orders: %w", err)
	}

	var opts []Option
	if settings.Revenue {
		opts = append(opts, WithRevenue(settings.DefaultCurrency))
	}
	agg := NewAggregator(settings.TopN, opts...)
	started := time.Now()
	res := agg.Aggregate(orders)

	s.logger.Info("orders aggregated",
		zap.Int("records", len(orders)),
		zap.Int("orders_total", res.OrdersTotal),
		zap.Int("orders_own_store", res.OwnStore().Orders),
		zap.Int("orders_marketplace", res.Marketplace().Orders),
		zap.Strings("currencies", res.Currencies),
		zap.Duration("elapsed", time.Since(started)),
	)

	commentary := s.comment(ctx, window, res)

	html, err := RenderHTML(window, agg.topN, res, commentary)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Window:     window,
		Result:     res,
		Commentary: commentary,
		Subject:    Subject(window),
		HTML:       html,
	}, nil
}

func (s *Service) Deliver(ctx context.Context, r Report) error {
	if err := s.notifier.Send(ctx, r.Subject, r.HTML); err != nil {
		return fmt.Errorf("deliver report: %w", err)
	}
	s.logger.Info("report delivered", zap.String("subject", r.Subject))
	return nil
}

func (s *Service) comment(ctx context.Context, window period.Window, res Result) string {
	if s.commentator == nil || !s.commentator.Enabled() {
		return ""
	}
	text, err := s.commentator.Comment(ctx, window, res)
	if err != nil {
		s.logger.Warn("commentary skipped", zap.Error(err))
		return ""
	}
	return text
}
