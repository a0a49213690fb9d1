package n2yo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			"invalid parameter",
			&InvalidParameterError{Param: "lat", Value: 91.0, Reason: "latitude must be between -90 and 90 degrees"},
			"invalid parameter lat=91: latitude must be between -90 and 90 degrees",
		},
		{
			"rate limited with message",
			&RateLimitedError{Message: "hourly request ceiling reached"},
			"rate limited: hourly request ceiling reached",
		},
		{
			"rate limited bare",
			&RateLimitedError{},
			"rate limited",
		},
		{
			"remote http",
			&RemoteError{StatusCode: 502, Message: "bad gateway"},
			"remote failure (HTTP 502): bad gateway",
		},
		{
			"remote network",
			&RemoteError{Network: true, Message: "connection refused"},
			"network error: connection refused",
		},
		{
			"remote other",
			&RemoteError{Message: "malformed response body"},
			"remote failure: malformed response body",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRemoteErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: %w", errors.New("connection refused"))
	err := &RemoteError{Network: true, Message: cause.Error(), err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want the wrapped cause reachable")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want the cause text", err.Error())
	}
}
