package apiclient

import "errors"

var ErrStatus = errors.New("the backend responded with status")

// ExchangeError is a failed exchange with the backend.
//
// Sent is false when the request was never dispatched. Response is nil when
// no response was received.
type ExchangeError struct {
	Sent     bool
	Response *Response
	Err      error
}

func (e *ExchangeError) Error() string {
	return e.Err.Error()
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}
