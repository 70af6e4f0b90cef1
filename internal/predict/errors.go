package predict

import (
	"fmt"
)

// ValidationError means the submission was rejected before any request was sent
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NewNoFileError returns the validation error used when no file was selected
func NewNoFileError() *ValidationError {
	return &ValidationError{Reason: "no file selected"}
}

// ServerError means the endpoint answered with a non-2xx status
type ServerError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s - %s", e.StatusCode, e.StatusText, e.Body)
}

// MalformedReason describes why a 2xx response body was rejected
type MalformedReason string

const (
	// ReasonInvalidJSON means the body could not be parsed as JSON
	ReasonInvalidJSON MalformedReason = "invalid JSON"

	// ReasonInvalidShape means the JSON is not a non-empty array of {className, probability}
	ReasonInvalidShape MalformedReason = "invalid or empty response structure"
)

// MalformedResponseError means the body of a successful response is unusable.
// Body holds the raw text for diagnosis.
type MalformedResponseError struct {
	Reason MalformedReason
	Body   string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response (%s): %v: %s", e.Reason, e.Err, e.Body)
	}
	return fmt.Sprintf("malformed response (%s): %s", e.Reason, e.Body)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NetworkError means the request could not be completed
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
