package forwarders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/simplemsg-hq/simplemsg-go/pkg/httpclient"
)

type httpForwarder struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
	typ     string
	log     Logger
}

func newHTTPForwarder(_ context.Context, cfg ForwarderConfig, log Logger) (Forwarder, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("forwarder %q missing http configuration", cfg.ID)
	}

	client := httpclient.New(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)

	return &httpForwarder{
		id:      cfg.ID,
		typ:     TypeHTTP,
		method:  cfg.HTTP.Method,
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  client,
		log:     ensureLogger(log),
	}, nil
}

func (h *httpForwarder) ID() string   { return h.id }
func (h *httpForwarder) Type() string { return h.typ }

func (h *httpForwarder) Forward(ctx context.Context, evt Event) error {
	req := h.client.R().
		SetContext(ctx).
		SetBody(evt)

	if len(h.headers) > 0 {
		req.SetHeaders(h.headers)
	}

	req.SetHeader("Content-Type", "application/json")

	resp, err := req.Execute(h.method, h.url)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	if resp.IsError() {
		snippet := readBodySnippet(resp.Body())
		return fmt.Errorf("http response status %d: %s", resp.StatusCode(), snippet)
	}
	h.log.DebugObj("http forwarder delivered event", "forwarder_http_delivery", map[string]any{
		"forwarder_id": h.id,
		"event_id":     evt.Event.ID,
	})
	return nil
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
