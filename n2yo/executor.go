package n2yo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/signalsfoundry/satwatch/internal/logging"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// executor performs exactly one network call for a validated, rate-admitted,
// cache-missed request and classifies the outcome.
type executor struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
	log     logging.Logger
}

// errEnvelope matches the upstream's structured error shape. Some endpoints
// return it with a success status, so it is checked on every response.
type errEnvelope struct {
	Error string `json:"error"`
}

// get issues the request for endpoint and returns the raw response body on
// success. Failures are classified per the error taxonomy; the credential is
// injected here and never appears in cache keys or error messages.
func (e *executor) get(ctx context.Context, endpoint string) ([]byte, error) {
	// The upstream expects the credential appended with '&' even though the
	// endpoint carries no query string of its own.
	url := e.baseURL + "/" + endpoint + "&apiKey=" + e.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RemoteError{Network: true, Message: "build request: " + err.Error(), err: err}
	}

	start := time.Now()
	resp, err := e.httpc.Do(req)
	if err != nil {
		e.log.Debug(ctx, "transport failure", logging.String("endpoint", endpoint), logging.Err(err))
		return nil, &RemoteError{Network: true, Message: err.Error(), err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: "read response body: " + err.Error(), err: err}
	}

	e.log.Debug(ctx, "request complete",
		logging.String("endpoint", endpoint),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitedError{Upstream: true, Message: "upstream returned HTTP 429"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamErrorMessage(body)
		if msg == "" {
			msg = resp.Status
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	// A success-looking status can still carry a top-level error object.
	if msg := upstreamErrorMessage(body); msg != "" {
		if strings.Contains(strings.ToLower(msg), "invalid api key") {
			return nil, &InvalidParameterError{Param: "apiKey", Value: "(redacted)", Reason: msg}
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: msg}
	}

	return body, nil
}

// upstreamErrorMessage extracts the message from a structured error body,
// returning "" when the body carries none.
func upstreamErrorMessage(body []byte) string {
	var env errEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Error
}

// decode parses a response body into out, classifying a parse failure as a
// malformed-response RemoteError.
func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteError{Message: fmt.Sprintf("malformed response body: %v", err), err: err}
	}
	return nil
}
