package api

import (
	"errors"
	"fmt"
)

// RemoteError is a failure reported by the server, either through a
// non-success HTTP status or a response with success set to false.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// TransportError indicates the request never produced a server response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing message of err: the server's error text
// for a *RemoteError, the full error string otherwise.
func Message(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return err.Error()
}
