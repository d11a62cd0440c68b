package output

import "fmt"

// The LLM boundary reports failures through five distinct types so callers
// can discriminate with errors.As instead of string matching.

// ConfigurationError means a required setting is missing or invalid. It is
// detected before any network call is made.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: missing or invalid %s", e.Field)
}

// AuthenticationError means the service rejected the credentials.
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication rejected (status %d): %s", e.StatusCode, e.Message)
}

// TransportError means the network round trip could not complete: timeout,
// connection refused, DNS failure.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is an application-level rejection from the AI service,
// carrying the provider's status and message verbatim.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("service error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("service error (status %d): %s", e.StatusCode, e.Message)
}

// DecodeError means the response body did not match the expected shape.
// Reason keeps enough raw context to debug the payload.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
