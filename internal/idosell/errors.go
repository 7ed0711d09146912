package idosell

import (
	"errors"
	"fmt"
)

var ErrPaginationOverrun = errors.New("idosell pagination overrun")

// TransportError is returned when the request could not be completed at the
// network level, after all attempts were used or the context ended.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("idosell transport failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a non-200 response that is not the end-of-results signal.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("idosell api error: %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("idosell api error: %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// MalformedResponseError means a 200 response whose body breaks the contract.
type MalformedResponseError struct {
	Page int
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("idosell malformed response on page %d: %v", e.Page, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

type PaginationOverrunError struct {
	MaxPages int
}

func (e *PaginationOverrunError) Error() string {
	return fmt.Sprintf("idosell pagination did not terminate within %d pages", e.MaxPages)
}

func (e *PaginationOverrunError) Unwrap() error {
	return ErrPaginationOverrun
}
