package consignment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingConfiguration   = errors.New("carrier configuration is incomplete")
	ErrServiceUnreachable     = errors.New("carrier service is unreachable")
	ErrRemote                 = errors.New("carrier returned an error")
	ErrMalformedResponse      = errors.New("carrier response is not valid JSON")
	ErrTrackingNumberNotFound = errors.New("tracking number not found in carrier response")
)

// MissingConfigurationError lists the configuration keys that were empty.
type MissingConfigurationError struct {
	Keys []string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrMissingConfiguration, strings.Join(e.Keys, ", "))
}

func (e *MissingConfigurationError) Unwrap() error {
	return ErrMissingConfiguration
}

// RemoteError is a non-success HTTP answer. Body is kept verbatim for diagnosis.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", ErrRemote, e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemote
}

// TrackingNumberNotFoundError is a well-formed answer without any known
// tracking number key.
type TrackingNumberNotFoundError struct {
	Body string
}

func (e *TrackingNumberNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTrackingNumberNotFound, e.Body)
}

func (e *TrackingNumberNotFoundError) Unwrap() error {
	return ErrTrackingNumberNotFound
}

// NewServiceUnreachableError wraps a transport failure.
func NewServiceUnreachableError(cause error) error {
	return fmt.Errorf("%w: %w", ErrServiceUnreachable, cause)
}

// NewMalformedResponseError wraps a decoding failure together with the raw body.
func NewMalformedResponseError(body string, cause error) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedResponse, cause, body)
}
