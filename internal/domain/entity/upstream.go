package entity

// UpstreamResponse is the uniform result of one call to the billing
// provider. OK mirrors the upstream HTTP status class; non-2xx responses
// are reported here rather than as errors, since upstream rejection is a
// normal outcome the bridge must relay to its callers.
type UpstreamResponse struct {
	OK     bool
	Status int
	Body   map[string]any
}
