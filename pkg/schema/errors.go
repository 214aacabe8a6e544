package schema

import (
	"errors"
	"fmt"
)

// Sentinels matched through errors.Is on the typed errors below.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrTransport        = errors.New("transport error")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrAPI              = errors.New("api error")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ConfigurationError reports missing or invalid client settings.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// TransportError wraps a failed round trip to the trade endpoint.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not get reply for %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// InvalidResponseError means the body was not a non-empty JSON object.
type InvalidResponseError struct {
	Method     string
	StatusCode int
	Body       string
	Err        error
}

func (e *InvalidResponseError) Error() string {
	msg := fmt.Sprintf("invalid data received for %s (status %d)", e.Method, e.StatusCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

func (e *InvalidResponseError) Is(target error) bool { return target == ErrInvalidResponse }

// APIError is a business level failure reported by the exchange.
type APIError struct {
	Method   string
	Message  string
	Response Response
}

func (e *APIError) Error() string {
	if e.Method == "" {
		return "api error: " + e.Message
	}
	return fmt.Sprintf("api error on %s: %s", e.Method, e.Message)
}

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// InvalidParameterError reports a caller supplied value outside its allowed set.
type InvalidParameterError struct {
	Name  string
	Value string
	Want  string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected %s", e.Name, e.Value, e.Want)
}

func (e *InvalidParameterError) Is(target error) bool { return target == ErrInvalidParameter }
