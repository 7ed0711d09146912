package report

import (
	"context"

	"orders_report/internal/idosell"
	"orders_report/internal/period"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts_test.go -package=report

// OrderSource drains the upstream order listing for one window.
type OrderSource interface {
	FetchAll(ctx context.Context, window period.Window) ([]idosell.Order, error)
}

// Notifier delivers a rendered report.
type Notifier interface {
	Send(ctx context.Context, subject, html string) error
}

// Commentator writes an optional prose summary of a result.
type Commentator interface {
	Enabled() bool
	Comment(ctx context.Context, window period.Window, res Result) (string, error)
}
