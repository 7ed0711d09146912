package idosell

import (
	"context"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RetryPolicy controls how a single POST is retried.
type RetryPolicy struct {
	MaxAttempts int
	// After attempt k the transport waits (Base^k + jitter) * Unit.
	Base float64
	Unit time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		Base:        1.6,
		Unit:        time.Second,
	}
}

// Backoff returns the wait after the given 1-indexed attempt.
func (p RetryPolicy) Backoff(attempt int, jitter float64) time.Duration {
	return time.Duration((math.Pow(p.Base, float64(attempt)) + jitter) * float64(p.Unit))
}

var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Transport posts a JSON body to one endpoint, retrying transient failures
// through the resty client's retry support.
type Transport struct {
	http     *resty.Client
	endpoint string
	policy   RetryPolicy
	logger   *zap.Logger

	jitter func() float64
}

func NewTransport(httpClient *resty.Client, endpoint string, policy RetryPolicy, logger *zap.Logger) *Transport {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if policy.Unit <= 0 {
		policy.Unit = time.Second
	}

	t := &Transport{
		http:     httpClient,
		endpoint: endpoint,
		policy:   policy,
		logger:   logger,
		jitter:   rand.Float64,
	}

	httpClient.
		SetRetryCount(policy.MaxAttempts - 1).
		SetRetryWaitTime(0).
		SetRetryMaxWaitTime(policy.Backoff(policy.MaxAttempts, 1)).
		SetRetryAfter(t.retryAfter).
		AddRetryCondition(shouldRetry)

	return t
}

// Send posts body and returns the first non-retryable response. When every
// attempt ends in a retryable status the last response is returned without an
// error; the caller decides what that status means.
func (t *Transport) Send(ctx context.Context, body any) (*resty.Response, error) {
	req := t.http.R().
		SetContext(ctx).
		SetBody(body)

	resp, err := req.Post(t.endpoint)
	if err != nil {
		return nil, &TransportError{Attempts: attempts(req), Err: err}
	}
	if ctxErr := ctx.Err(); ctxErr != nil && retryableStatuses[resp.StatusCode()] {
		return nil, &TransportError{Attempts: attempts(req), Err: ctxErr}
	}
	return resp, nil
}

func (t *Transport) retryAfter(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	wait := t.policy.Backoff(resp.Request.Attempt, t.jitter())
	t.logger.Warn("retrying request",
		zap.Int("attempt", resp.Request.Attempt),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("wait", wait),
	)
	return wait, nil
}

// shouldRetry retries network failures and transient statuses. A nil response
// means the request never left the client.
func shouldRetry(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request.Context().Err() != nil {
		return false
	}
	if err != nil {
		return true
	}
	return retryableStatuses[resp.StatusCode()]
}

func attempts(req *resty.Request) int {
	if req.Attempt < 1 {
		return 1
	}
	return req.Attempt
}
