package pricing

import "fmt"

// ErrorKind is the failure taxonomy of the remote pricing services.
// Every failed call reduces to exactly one kind; retry policy and the
// fallback tiers branch on it rather than on error strings.
type ErrorKind string

const (
	// KindTimeout: the call exceeded the configured deadline. Retryable.
	KindTimeout ErrorKind = "timeout"
	// KindClientError: 4xx. The request itself is wrong; never retried.
	KindClientError ErrorKind = "client_error"
	// KindServerError: 5xx. Retryable.
	KindServerError ErrorKind = "server_error"
	// KindNetworkFailure: transport-level failure before a status code
	// existed. Retryable.
	KindNetworkFailure ErrorKind = "network_failure"
	// KindUnparseable: the response body did not match the expected
	// shape. Surfaced as-is, not retried.
	KindUnparseable ErrorKind = "unparseable"
)

// APIError is the terminal error value surfaced by a Client after
// retries are exhausted. Status is zero when no HTTP status was
// received; Code is the service's machine-readable code when the body
// carried one.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("pricing api: %s (status=%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("pricing api: %s: %s", e.Kind, e.Message)
}

// Retryable reports whether another attempt could plausibly succeed.
// Client errors are assumed non-transient and unparseable bodies will
// not fix themselves on a retry.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindServerError, KindNetworkFailure:
		return true
	}
	return false
}
