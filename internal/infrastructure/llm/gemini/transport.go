package gemini

import (
	"net/http"

	"email-triage/internal/application/port/output"
)

// loggingTransport records request/response metadata for debugging. Bodies
// are not logged; they contain user email text.
type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.logger.Debug("HTTP request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	resp, err := t.base.RoundTrip(req)

	if resp != nil {
		t.logger.Debug("HTTP response",
			"status", resp.Status,
			"statusCode", resp.StatusCode,
		)
	}
	if err != nil {
		t.logger.Error("HTTP round trip failed", "error", err)
	}

	return resp, err
}
