package mailer

import (
	"errors"
	"fmt"
)

var ErrNoRecipients = errors.New("no recipients configured")

// DeliveryError is returned when the mail provider refuses or cannot take
// the message.
type DeliveryError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s delivery failed: %v", e.Provider, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s delivery failed: status %d: %s", e.Provider, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s delivery failed: status %d", e.Provider, e.StatusCode)
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
