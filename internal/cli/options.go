package cli

import (
	"time"

	"orders_report/internal/config"
)

type Options struct {
	Date    string
	TopN    int
	Revenue bool
	DryRun  bool
	JSON    bool
	Timeout time.Duration
}

func optionsFromConfig(cfg config.Config) Options {
	return Options{
		TopN:    cfg.TopN,
		Revenue: cfg.RevenueEnabled,
		Timeout: cfg.RunTimeout,
	}
}
