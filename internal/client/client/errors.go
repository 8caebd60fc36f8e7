package client

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrTransport          = errors.New("transport error")
	ErrConnectionRefused  = errors.New("connection refused")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrServer             = errors.New("server error")
)

// ServerError is a failure the backend explained with a message.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Is(target error) bool { return target == ErrServer }

// TransportError is a failure below HTTP: DNS, dial, TLS, timeout or
// cancellation. Refused is set when the backend actively refused the
// connection.
type TransportError struct {
	Op      string
	Err     error
	Refused bool
}

func (e *TransportError) Error() string {
	if e.Refused {
		return "backend unreachable"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport || (e.Refused && target == ErrConnectionRefused)
}
