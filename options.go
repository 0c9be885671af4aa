package stemsplit

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the bearer token attached to authenticated requests.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the per-request timeout. The health check keeps its
// own fixed short timeout regardless.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. A client carrying a
// non-zero Timeout takes over deadline enforcement from the SDK.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBufferedUploads assembles multipart bodies in memory instead of
// streaming them, trading memory for a rewindable request body with a
// known Content-Length.
func WithBufferedUploads() Option {
	return func(c *Client) {
		c.encoder = bufferEncoder{}
	}
}
