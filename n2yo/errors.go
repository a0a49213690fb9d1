package n2yo

import "fmt"

// The client maps every failure into one of three error kinds so callers can
// branch with errors.As instead of inspecting message strings:
//
//   - InvalidParameterError: a caller-supplied argument failed validation or
//     a name failed to resolve. Raised before any network I/O.
//   - RateLimitedError: the local sliding-window ceiling was exceeded with
//     queueing disabled, or the upstream returned HTTP 429.
//   - RemoteError: any other upstream failure, a transport-level failure, or
//     a malformed response body.

// InvalidParameterError reports a rejected argument. It names the parameter,
// the offending value, and a human-readable reason.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}

// RateLimitedError reports that a request was not (or could not be) sent
// because of rate limiting.
type RateLimitedError struct {
	// Upstream is true when the API itself answered 429 after the request
	// was admitted locally.
	Upstream bool
	Message  string
}

func (e *RateLimitedError) Error() string {
	if e.Message != "" {
		return "rate limited: " + e.Message
	}
	return "rate limited"
}

// RemoteError reports an upstream or transport failure.
type RemoteError struct {
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Network is true for transport-level failures (no response at all),
	// distinguishing them from HTTP-level errors.
	Network bool
	Message string

	err error
}

func (e *RemoteError) Error() string {
	switch {
	case e.Network:
		return "network error: " + e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("remote failure (HTTP %d): %s", e.StatusCode, e.Message)
	default:
		return "remote failure: " + e.Message
	}
}

func (e *RemoteError) Unwrap() error { return e.err }
