package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when no credential is supplied.
	ErrMissingAPIKey = errors.New("gemini: api key is not set (export GEMINI_API_KEY)")

	// ErrTruncated marks a response cut off by the output token ceiling.
	ErrTruncated = errors.New("gemini: response truncated by output token limit")
)

// StatusError is a non-2xx reply from the endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini: endpoint returned status %d: %s", e.Code, e.Body)
}

// ResponseError is a 2xx reply whose body cannot be parsed into usable text.
// Payload carries the raw response for diagnosis.
type ResponseError struct {
	Reason  string
	Payload string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("gemini: unexpected response (%s): %s", e.Reason, e.Payload)
}
