package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a call failed.
type Kind int

const (
	// KindParse: the response body was not valid JSON, or did not decode
	// into the expected shape.
	KindParse Kind = iota + 1
	// KindRequest: the backend answered with a non-2xx status.
	KindRequest
	// KindTransport: no response was received (DNS, refused, timeout, cancel).
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindRequest:
		return "request"
	case KindTransport:
		return "transport"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var (
	// ErrNoFile is returned by the uploads when FileUpload has no Reader.
	ErrNoFile = errors.New("no file selected")

	ErrParse     = errors.New("parse failure")
	ErrRequest   = errors.New("request failure")
	ErrTransport = errors.New("transport failure")
)

// Error is the type of every failure of a request the client sent or tried
// to send. Error() is the human-readable message only; Status and Kind are
// there so callers never have to match on message text. Arguments rejected
// before a request is built (ErrNoFile, an invalid mode, a body that does not
// marshal) come back as plain errors with KindOf == 0; both are logged.
type Error struct {
	Kind     Kind
	Method   string
	Endpoint string
	Status   int // 0 for transport failures
	Message  string
	Err      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) and friends match on the kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Kind == KindParse
	case ErrRequest:
		return e.Kind == KindRequest
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// KindOf returns the kind of a client error, or 0 when err is not one.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

func statusMessage(status int) string {
	return fmt.Sprintf("HTTP %d", status)
}

func parseMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return statusMessage(status)
}
