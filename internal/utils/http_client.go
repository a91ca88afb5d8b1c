package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithBusyRetries makes the client retry responses with status
// 503 Service Unavailable up to count times, waiting wait between attempts,
// as long as retryable reports the request as safe to repeat.
func (c *HTTPClient) WithBusyRetries(count int, wait time.Duration, retryable func(*resty.Request) bool) *HTTPClient {
	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(4 * wait).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil || resp == nil || resp.Request == nil {
				return false
			}
			return resp.StatusCode() == http.StatusServiceUnavailable && retryable(resp.Request)
		})
	return c
}
