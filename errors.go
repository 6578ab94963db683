package heuristmesh

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when no API key is passed and the
	// HEURIST_API_KEY environment variable is unset.
	ErrMissingAPIKey = errors.New("api key must be provided via Options or the HEURIST_API_KEY environment variable")

	// ErrTaskNotFound reports that the remote does not know the polled task
	// id. Matched with errors.Is; the concrete error in the chain is the
	// *HTTPError carrying the 404.
	ErrTaskNotFound = errors.New("task not found")

	// ErrWaitTimeout is returned by WaitForTask when the poll budget is
	// exhausted before the task reaches a terminal status.
	ErrWaitTimeout = errors.New("task did not finish within the poll budget")
)

// ValidationError reports a malformed request rejected before any network
// call was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// HTTPError reports a non-2xx response from the Mesh API. Body holds the raw
// response body for diagnosis; the client never interprets it.
type HTTPError struct {
	StatusCode int
	Body       string

	sentinel error
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("mesh api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("mesh api returned status %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes an attached sentinel (e.g. ErrTaskNotFound for a 404 on the
// task query endpoint) so errors.Is works across the chain.
func (e *HTTPError) Unwrap() error {
	return e.sentinel
}

// DecodeError reports a response body that could not be parsed into the
// expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
