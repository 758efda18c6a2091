package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientTimeout = 10 * time.Second
	defaultRetryCount    = 2
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with a bounded timeout that
// retries idempotent requests on connection errors and 5xx responses.
// Callers may override both with SetTimeout and SetRetryCount.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetTimeout(defaultClientTimeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}
