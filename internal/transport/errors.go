package transport

import (
	"errors"
	"fmt"
)

// Failure categories. Every error returned by Client matches exactly one of
// these through errors.Is.
var (
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrEncoding        = errors.New("request encoding failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrServer          = errors.New("server error")
	ErrDecoding        = errors.New("response decoding failed")
	ErrTransport       = errors.New("transport failure")
)

// EncodingError wraps a request body serialization failure.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string        { return fmt.Sprintf("%v: %v", ErrEncoding, e.Err) }
func (e *EncodingError) Unwrap() error        { return e.Err }
func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// ServerError reports a non-2xx, non-401 response.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string        { return fmt.Sprintf("%v: HTTP %d", ErrServer, e.StatusCode) }
func (e *ServerError) Is(target error) bool { return target == ErrServer }

// DecodingError wraps a codec failure on a 2xx response body.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string        { return fmt.Sprintf("%v: %v", ErrDecoding, e.Err) }
func (e *DecodingError) Unwrap() error        { return e.Err }
func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

// TransportError wraps a connection, timeout or cancellation fault.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrTransport, e.Method, e.Path, e.Err)
}
func (e *TransportError) Unwrap() error        { return e.Err }
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Failure kind labels, stable for logs and metrics.
const (
	KindInvalidEndpoint = "invalid_endpoint"
	KindEncoding        = "encoding"
	KindUnauthorized    = "unauthorized"
	KindServer          = "server"
	KindDecoding        = "decoding"
	KindTransport       = "transport"
	KindUnknown         = "unknown"
)

// Kind classifies err into one of the Kind* labels. A nil error yields "".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidEndpoint):
		return KindInvalidEndpoint
	case errors.Is(err, ErrEncoding):
		return KindEncoding
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrServer):
		return KindServer
	case errors.Is(err, ErrDecoding):
		return KindDecoding
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindUnknown
	}
}

// Message returns a short message suitable for showing to an end user.
func Message(err error) string {
	switch Kind(err) {
	case "":
		return ""
	case KindInvalidEndpoint:
		return "The service address is misconfigured."
	case KindEncoding:
		return "The request could not be prepared."
	case KindUnauthorized:
		return "Your session has expired. Please sign in again."
	case KindServer:
		var se *ServerError
		if errors.As(err, &se) {
			return fmt.Sprintf("The server returned an error (HTTP %d). Please try again later.", se.StatusCode)
		}
		return "The server returned an error. Please try again later."
	case KindDecoding:
		return "The server sent data this app could not read."
	case KindTransport:
		return "Could not reach the server. Check your connection and try again."
	default:
		return err.Error()
	}
}
