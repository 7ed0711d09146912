package mailer

import (
	"context"

	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpProvider struct {
	dialer dialer
}

func newSMTP(host string, port int, username, password string) *smtpProvider {
	return &smtpProvider{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *smtpProvider) Name() string {
	return "smtp"
}

// Deliver sends one message to all recipients. The dialer itself is not
// cancellable, so ctx is only checked up front.
func (s *smtpProvider) Deliver(ctx context.Context, msg message) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Provider: s.Name(), Err: err}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return &DeliveryError{Provider: s.Name(), Err: err}
	}
	return nil
}
