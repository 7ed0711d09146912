package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"orders_report/internal/config"
	"orders_report/internal/period"
	"orders_report/internal/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reportService interface {
	Build(ctx context.Context, window period.Window, settings report.Settings) (report.Report, error)
	Deliver(ctx context.Context, r report.Report) error
}

type Runner struct {
	cfg     config.Config
	options Options
	logger  *zap.Logger
	reports reportService
	stdout  io.Writer
	now     func() time.Time
}

func NewRunner(cfg config.Config, logger *zap.Logger, service *report.Service) *Runner {
	return newRunner(cfg, logger, service, os.Stdout)
}

func newRunner(cfg config.Config, logger *zap.Logger, reports reportService, stdout io.Writer) *Runner {
	return &Runner{
		cfg:     cfg,
		options: optionsFromConfig(cfg),
		logger:  logger.Named("cli"),
		reports: reports,
		stdout:  stdout,
		now:     time.Now,
	}
}

func (r *Runner) Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			r.logger.Warn("interrupted", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	return r.run(ctx, os.Args[1:])
}

func (r *Runner) run(ctx context.Context, args []string) error {
	opts := r.options
	if err := parseFlags(&opts, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	loc, err := r.cfg.Location()
	if err != nil {
		return &config.ConfigurationError{Settings: []string{"TZ"}}
	}
	window, err := resolveWindow(opts.Date, r.now(), loc)
	if err != nil {
		return err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	logger := r.logger.With(zap.String("run_id", uuid.NewString()))
	logger.Info("run started",
		zap.String("date", window.Label()),
		zap.Bool("dry_run", opts.DryRun),
		zap.Duration("timeout", opts.Timeout),
	)
	started := time.Now()

	settings := report.SettingsFromConfig(r.cfg)
	settings.TopN = opts.TopN
	settings.Revenue = opts.Revenue
	rep, err := r.reports.Build(ctx, window, settings)
	if err != nil {
		logger.Error("report failed", zap.Error(err))
		return err
	}

	if opts.JSON {
		if err := writeJSON(r.stdout, rep); err != nil {
			return err
		}
	}

	if opts.DryRun {
		if !opts.JSON {
			if _, err := io.WriteString(r.stdout, rep.HTML); err != nil {
				return fmt.Errorf("write html: %w", err)
			}
		}
		logger.Info("dry run finished", zap.Duration("elapsed", time.Since(started)))
		return nil
	}

	if err := r.reports.Deliver(ctx, rep); err != nil {
		logger.Error("report failed", zap.Error(err))
		return err
	}
	if !opts.JSON {
		writeSummary(r.stdout, rep)
	}

	logger.Info("run finished", zap.Duration("elapsed", time.Since(started)))
	return nil
}

func parseFlags(opts *Options, args []string) error {
	fs := flag.NewFlagSet("orders-report", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.Date, "date", opts.Date, "Report day (YYYY-MM-DD), defaults to yesterday")
	fs.IntVar(&opts.TopN, "top-n", opts.TopN, "Products per channel table (TOP_N)")
	fs.BoolVar(&opts.Revenue, "revenue", opts.Revenue, "Include order value (REVENUE_ENABLED)")
	fs.BoolVar(&opts.DryRun, "dry-run", opts.DryRun, "Print the report instead of sending it")
	fs.BoolVar(&opts.JSON, "json", opts.JSON, "Print the aggregate as JSON")
	fs.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Whole run deadline, 0 for none (RUN_TIMEOUT)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &config.ConfigurationError{Settings: []string{"flags"}}
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", config.ErrInvalidConfig, strings.Join(fs.Args(), " "))
	}
	if opts.TopN <= 0 {
		return &config.ConfigurationError{Settings: []string{"--top-n"}}
	}
	if opts.Timeout < 0 {
		return &config.ConfigurationError{Settings: []string{"--timeout"}}
	}
	return nil
}

// resolveWindow picks the report day: the given date, or yesterday in loc.
func resolveWindow(date string, now time.Time, loc *time.Location) (period.Window, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return period.Yesterday(now, loc), nil
	}
	window, err := period.Parse(date, loc)
	if err != nil {
		return period.Window{}, &config.ConfigurationError{Settings: []string{"--date"}}
	}
	return window, nil
}
