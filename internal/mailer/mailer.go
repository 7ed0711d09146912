package mailer

import (
	"context"
	"fmt"

	"orders_report/internal/config"

	"go.uber.org/zap"
)

type message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

type provider interface {
	Name() string
	Deliver(ctx context.Context, msg message) error
}

// Mailer sends the rendered report to every configured recipient in one
// message.
type Mailer struct {
	provider provider
	from     string
	to       []string
	logger   *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) (*Mailer, error) {
	logger = logger.Named("mailer")

	var p provider
	switch cfg.MailProvider {
	case config.MailProviderSendGrid, "":
		p = newSendGrid(cfg.SendGridEndpoint, cfg.SendGridAPIKey, cfg.RequestTimeout, logger)
	case config.MailProviderSMTP:
		p = newSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}

	return newMailer(p, cfg.MailFrom, cfg.Recipients(), logger), nil
}

func newMailer(p provider, from string, to []string, logger *zap.Logger) *Mailer {
	return &Mailer{
		provider: p,
		from:     from,
		to:       to,
		logger:   logger,
	}
}

func (m *Mailer) Send(ctx context.Context, subject, html string) error {
	if len(m.to) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Provider: m.provider.Name(), Err: err}
	}

	msg := message{From: m.from, To: m.to, Subject: subject, HTML: html}
	if err := m.provider.Deliver(ctx, msg); err != nil {
		m.logger.Error("email not sent",
			zap.String("provider", m.provider.Name()),
			zap.Int("recipients", len(m.to)),
			zap.Error(err),
		)
		return err
	}

	m.logger.Info("email sent",
		zap.String("provider", m.provider.Name()),
		zap.Int("recipients", len(m.to)),
		zap.String("subject", subject),
	)
	return nil
}
