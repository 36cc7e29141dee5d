package source

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned before any request when no gist id is given.
	ErrMissingID = errors.New("no gist id provided: add ?gist=YOUR_GIST_ID")
	// ErrNoJSONFile is returned when the gist has no file ending in .json.
	ErrNoJSONFile = errors.New("no JSON file found in gist")
	// ErrMalformedJSON is returned when the selected file is not a JSON object.
	ErrMalformedJSON = errors.New("malformed dashboard JSON")
)

// FetchError reports a transport failure or a non-success HTTP status.
// StatusCode is 0 when no response was received.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch gist: %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch gist: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ErrorKind groups load failures for callers that map them to exit codes
// or HTTP statuses.
type ErrorKind string

const (
	KindInput   ErrorKind = "input"
	KindFetch   ErrorKind = "fetch"
	KindFormat  ErrorKind = "format"
	KindUnknown ErrorKind = "unknown"
)

// Kind classifies err. A nil error is KindUnknown.
func Kind(err error) ErrorKind {
	var fe *FetchError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrMissingID):
		return KindInput
	case errors.As(err, &fe):
		return KindFetch
	case errors.Is(err, ErrNoJSONFile), errors.Is(err, ErrMalformedJSON):
		return KindFormat
	default:
		return KindUnknown
	}
}
