package messaging

import (
	"fmt"
	"strings"
)

// APIError is the failure result for any non-2xx response. It carries the
// original status code and raw body; the client never retries or recovers.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	snippet := bodySnippet(e.Body)
	if snippet == "" {
		return fmt.Sprintf("messaging api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("messaging api: status %d: %s", e.StatusCode, snippet)
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
