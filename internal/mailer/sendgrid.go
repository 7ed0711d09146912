package mailer

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultSendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

type sendGrid struct {
	http     *resty.Client
	endpoint string
}

func newSendGrid(endpoint, apiKey string, timeout time.Duration, logger *zap.Logger) *sendGrid {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = defaultSendGridEndpoint
	}
	httpClient := resty.New().
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetLogger(logger.Sugar())

	return &sendGrid{http: httpClient, endpoint: endpoint}
}

func (s *sendGrid) Name() string {
	return "sendgrid"
}

func (s *sendGrid) Deliver(ctx context.Context, msg message) error {
	to := make([]sendGridAddress, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, sendGridAddress{Email: addr})
	}

	body := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: to}},
		From:             sendGridAddress{Email: msg.From},
		Subject:          msg.Subject,
		Content:          []sendGridContent{{Type: "text/html", Value: msg.HTML}},
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(s.endpoint)
	if err != nil {
		return &DeliveryError{Provider: s.Name(), Err: err}
	}

	if resp.IsSuccess() {
		return nil
	}
	return &DeliveryError{
		Provider:   s.Name(),
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(resp.String()),
	}
}
