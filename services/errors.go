package services

import "fmt"

// InputError marks a request rejected before any external call; handlers map
// it to HTTP 400 with the user-facing message.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func NewInputError(msg string) error {
	return &InputError{Message: msg}
}

// UpstreamError wraps a failure of a source-of-truth dependency (calendar,
// credentials); handlers map it to HTTP 500 with a generic message while the
// wrapped detail stays in the server log.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
