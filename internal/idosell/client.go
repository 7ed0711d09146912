package idosell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orders_report/internal/config"
	"orders_report/internal/period"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultResultsLimit = 100
	defaultMaxPages     = 2000

	// StatusNoMoreResults is how the orders API answers a page past the end.
	StatusNoMoreResults = http.StatusMultiStatus
)

// resultFields are tried in order; the API has used both spellings.
var resultFields = []string{"Results", "results"}

type Client struct {
	transport    *Transport
	resultsLimit int
	maxPages     int
	logger       *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	logger = logger.Named("idosell")

	httpClient := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("X-API-KEY", cfg.IdoSellAPIKey).
		SetTimeout(cfg.RequestTimeout).
		SetLogger(logger.Sugar())

	policy := DefaultRetryPolicy()
	if cfg.RetryAttempts > 0 {
		policy.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryBase > 0 {
		policy.Base = cfg.RetryBase
	}

	return newClient(NewTransport(httpClient, cfg.IdoSellEndpoint, policy, logger), cfg.ResultsLimit, cfg.MaxPages, logger)
}

func newClient(transport *Transport, resultsLimit, maxPages int, logger *zap.Logger) *Client {
	if resultsLimit <= 0 {
		resultsLimit = defaultResultsLimit
	}
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Client{
		transport:    transport,
		resultsLimit: resultsLimit,
		maxPages:     maxPages,
		logger:       logger,
	}
}

// FetchAll drains every page of orders added within the window. Records keep
// page order and are not deduplicated.
func (c *Client) FetchAll(ctx context.Context, window period.Window) ([]Order, error) {
	req := newOrdersRequest(window, c.resultsLimit)
	started := time.Now()

	var orders []Order
	for page := 0; ; page++ {
		if page >= c.maxPages {
			return nil, &PaginationOverrunError{MaxPages: c.maxPages}
		}
		req.Params.ResultsPage = page

		c.logger.Debug("fetching page", zap.Int("page", page))
		resp, err := c.transport.Send(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		switch resp.StatusCode() {
		case http.StatusOK:
		case StatusNoMoreResults:
			c.logger.Info("no more results",
				zap.Int("page", page),
				zap.String("body", strings.TrimSpace(resp.String())),
			)
			return c.done(orders, page, started), nil
		default:
			return nil, upstreamErrorFromResponse(resp)
		}

		records, err := decodePage(resp.Body())
		if err != nil {
			return nil, &MalformedResponseError{Page: page, Err: err}
		}
		if len(records) == 0 {
			c.logger.Info("empty page", zap.Int("page", page))
			return c.done(orders, page, started), nil
		}

		c.logger.Info("page fetched", zap.Int("page", page), zap.Int("orders", len(records)))
		orders = append(orders, records...)
	}
}

func (c *Client) done(orders []Order, pages int, started time.Time) []Order {
	c.logger.Info("orders fetched",
		zap.Int("orders", len(orders)),
		zap.Int("pages", pages),
		zap.Duration("elapsed", time.Since(started)),
	)
	return orders
}

// decodePage extracts the order list from a 200 body. A null results field
// falls through to the next spelling and no usable field is an empty page.
// Anything that is not a JSON object with an array there is a contract
// violation.
func decodePage(body []byte) ([]Order, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if envelope == nil {
		return nil, fmt.Errorf("decode body: not a JSON object")
	}

	for _, field := range resultFields {
		raw, ok := envelope[field]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		var orders []Order
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&orders); err != nil {
			return nil, fmt.Errorf("decode %s: %w", field, err)
		}
		return orders, nil
	}

	return nil, nil
}

func upstreamErrorFromResponse(resp *resty.Response) error {
	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Status:     http.StatusText(resp.StatusCode()),
		Body:       strings.TrimSpace(resp.String()),
	}
}
