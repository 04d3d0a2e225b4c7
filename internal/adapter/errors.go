package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDecodeResponse is returned when the server answered with the expected
// status but its body is not the documented JSON.
var ErrDecodeResponse = errors.New("decode response")

// maxErrorBodyLen bounds the response body kept in an [UnexpectedStatusError].
const maxErrorBodyLen = 256

// NetworkError reports that a request could not complete at all: refused
// connection, DNS failure, timeout or a cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError reports that the server answered with a status other
// than the one documented for the operation. Any body is kept trimmed.
type UnexpectedStatusError struct {
	Op         string
	StatusCode int
	Want       int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d (want %d): %s", e.Op, e.StatusCode, e.Want, body)
}
