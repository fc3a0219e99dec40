package api

import (
	"errors"
	"fmt"
)

var (
	// ErrRetriesExhausted is returned once every GET attempt has failed.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrDecode wraps a response body that is not the JSON shape we expect.
	ErrDecode = errors.New("decode response")

	// ErrInvalidPayload wraps a response that decoded but failed validation.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrRejected is returned when the backend answers {"success": false}.
	ErrRejected = errors.New("request rejected")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: api returned status %d", e.URL, e.Code)
}

// IsClientError reports a 4xx response, which is never retried.
func (e *StatusError) IsClientError() bool {
	return e.Code >= 400 && e.Code < 500
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, fmt.Sprintf(format, args...))
}
