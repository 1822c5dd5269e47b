package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls made by adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that makes exactly one attempt per request
// and gives up after timeout. A zero timeout leaves requests bounded only by
// their context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
