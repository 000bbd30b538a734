package slack

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// Unauthorized means the credential was rejected by the service.
	Unauthorized Kind = iota + 1
	// Unavailable covers network and transport failures, including timeouts.
	Unavailable
	// MalformedResponse means the response could not be parsed into the
	// expected reminder shape.
	MalformedResponse
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case Unavailable:
		return "unavailable"
	case MalformedResponse:
		return "malformed response"
	}
	return "unknown"
}

// FetchError is returned by the client for any failed call. Code carries the
// service error code when one was returned.
type FetchError struct {
	Kind Kind
	Code string
	Err  error
}

func (e *FetchError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("slack: %s (%s)", e.Kind, e.Code)
	case e.Err != nil:
		return fmt.Sprintf("slack: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("slack: %s", e.Kind)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err, or zero when err is not a
// FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

func unauthorized(code string) error {
	return &FetchError{Kind: Unauthorized, Code: code}
}

func unavailable(code string, err error) error {
	return &FetchError{Kind: Unavailable, Code: code, Err: err}
}

func malformed(err error) error {
	return &FetchError{Kind: MalformedResponse, Err: err}
}
