// Package messaging is a thin client for the hosted messaging API. It exposes
// typed operations over the contacts and messages resources; each operation is
// a single synchronous HTTP round-trip with no retries or local caching.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/simplemsg-hq/simplemsg-go/pkg/httpclient"
)

// Client talks to the messaging API. Its configuration is fixed at
// construction, so a single Client is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// Option customizes client construction.
type Option func(*Client)

// WithTimeout sets the transport timeout for all requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithHTTPClient replaces the underlying resty client. Base URL and headers
// are applied after options run, so they survive the swap.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a client for the API at baseURL authenticating with apiKey.
// Any trailing slash on baseURL is stripped. No network call is made here.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{http: httpclient.New(httpclient.DefaultTimeout)}
	for _, opt := range opts {
		opt(c)
	}

	c.http.SetBaseURL(strings.TrimRight(baseURL, "/"))
	c.http.SetHeader("Authorization", "Bearer "+apiKey)
	c.http.SetHeader("Content-Type", "application/json")
	return c
}

// do issues one request to baseURL+path with the stored headers, the given
// query parameters, and body serialized as JSON when present. The response
// body is decoded into out when out is non-nil; any non-2xx status yields an
// *APIError and no decoded result.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Body:       append([]byte(nil), resp.Body()...),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
