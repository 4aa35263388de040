package generation

import (
	"errors"
	"fmt"
)

// Sentinel errors of the generation pipeline.
var (
	// ErrSetup is returned when the API key or business description is missing.
	// It is the only error surfaced to the user instead of falling back.
	ErrSetup = errors.New("generation setup incomplete: configure your API key and business description")

	// ErrEmptyResponse is returned when the service answered successfully but
	// the message carried no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrNoJSONFound is returned when the reply contains no {...} span.
	ErrNoJSONFound = errors.New("no JSON object found in model response")

	// ErrMalformedJSON is returned when the isolated span does not parse.
	ErrMalformedJSON = errors.New("malformed JSON in model response")

	// ErrSchemaViolation is returned when the JSON parses but misses required
	// fields or carries unusable values.
	ErrSchemaViolation = errors.New("model response violates the content schema")

	// ErrInvalidConfig is returned when a completer is constructed with
	// unusable settings.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// TransportError is returned when the request never produced an HTTP response
// (DNS, connection refused, TLS, cancelled context).
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling language model: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError is returned for a non-2xx HTTP status. Body holds the response
// text as received; redact it before logging.
type UpstreamError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("language model request failed (%d): %s", e.StatusCode, e.Body)
}

// Reason labels for Classify.
const (
	ReasonTransport       = "transport_error"
	ReasonUpstream        = "upstream_error"
	ReasonEmptyResponse   = "empty_response"
	ReasonNoJSONFound     = "no_json_found"
	ReasonMalformedJSON   = "malformed_json"
	ReasonSchemaViolation = "schema_violation"
	ReasonSetup           = "setup_error"
	ReasonUnknown         = "unknown"
)

// Classify maps a pipeline error to a stable, user-safe label.
func Classify(err error) string {
	var transportErr *TransportError
	var upstreamErr *UpstreamError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSetup):
		return ReasonSetup
	case errors.As(err, &upstreamErr):
		return ReasonUpstream
	case errors.As(err, &transportErr):
		return ReasonTransport
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, ErrNoJSONFound):
		return ReasonNoJSONFound
	case errors.Is(err, ErrMalformedJSON):
		return ReasonMalformedJSON
	case errors.Is(err, ErrSchemaViolation):
		return ReasonSchemaViolation
	default:
		return ReasonUnknown
	}
}
