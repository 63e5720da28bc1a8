package llm

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// RateLimitError indicates the provider rejected the call with HTTP 429.
// The caller may retry later; no retry happens here.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %v", e.Cause)
}

func (e *RateLimitError) Unwrap() error {
	return e.Cause
}

// QuotaError indicates the provider account is out of credits (HTTP 402).
type QuotaError struct {
	Cause error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("credits exhausted: %v", e.Cause)
}

func (e *QuotaError) Unwrap() error {
	return e.Cause
}

// TransportError covers every other provider or network failure.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// classifyError maps provider errors onto the taxonomy above so callers can
// present a specific, actionable message for each case.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return &RateLimitError{Cause: err}
		case http.StatusPaymentRequired:
			return &QuotaError{Cause: err}
		}
	}
	return &TransportError{Message: "request failed", Cause: err}
}
