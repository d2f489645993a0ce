package domain

import "errors"

var (
	// ErrInvalidInput indicates the caller supplied missing or malformed
	// input. This is the only error class surfaced as an HTTP 400.
	ErrInvalidInput = errors.New("invalid input")
)

// Soft-failure reasons reported to callers inside a 200 response body.
// Anything upstream-caused or bridge-internal is deliberately not an
// HTTP-level failure: callers treat the bridge as a normalization layer
// and expect structured errors, with 4xx reserved for their own mistakes.
const (
	ReasonMissingEmail          = "missing_email"
	ReasonUpstreamError         = "upstream_error"
	ReasonNoBillingAttemptFound = "no_billing_attempt_found"
	ReasonBridgeException       = "bridge_exception"
)

// Fault describes a soft failure. It is carried inside operation results
// and serialized under the "error" key of an otherwise successful response.
type Fault struct {
	Reason   string         `json:"reason"`
	Message  string         `json:"message,omitempty"`
	Status   int            `json:"status,omitempty"`
	Body     map[string]any `json:"body,omitempty"`
	Endpoint string         `json:"endpoint,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// UpstreamFault builds a Fault for a non-2xx upstream response.
func UpstreamFault(status int, body map[string]any) *Fault {
	return &Fault{
		Reason: ReasonUpstreamError,
		Status: status,
		Body:   body,
	}
}

// BridgeFault builds a Fault for an unexpected local failure, including
// transport-level failures reaching the upstream provider.
func BridgeFault(message string) *Fault {
	return &Fault{
		Reason:  ReasonBridgeException,
		Message: message,
	}
}
