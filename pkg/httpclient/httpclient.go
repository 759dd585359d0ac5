package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds outbound requests when callers do not pick one.
const DefaultTimeout = 15 * time.Second

// New returns a resty.Client tuned with the given timeout. Callers attach
// their own base URL and headers.
func New(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}
