package stemsplit

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the public StemSplit deployment.
const DefaultBaseURL = "https://api.stemsplit.io"

const (
	defaultTimeout = 5 * time.Minute

	// healthTimeout bounds the liveness check independently of the
	// configured client timeout.
	healthTimeout = 10 * time.Second
)

const (
	separatePath = "/api/v1/separate"
	healthPath   = "/health"
)

// Client is the StemSplit API client.
//
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	encoder    formEncoder
	transport  transport
}

// NewClient creates a new StemSplit client.
//
// An empty baseURL selects [DefaultBaseURL]; anything else must be a
// well-formed URL, normalized by stripping trailing slashes. Options
// are applied in order.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    normalized,
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
		encoder:    streamEncoder{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := validateTimeout(c.timeout); err != nil {
		return nil, err
	}

	// Strategy decision happens once, here: an injected client that
	// already enforces its own Timeout keeps it, otherwise each call
	// gets a context deadline.
	if c.httpClient.Timeout > 0 {
		c.transport = clientTimeoutTransport{client: c.httpClient}
	} else {
		c.transport = deadlineTransport{client: c.httpClient}
	}

	return c, nil
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// setHeaders applies the standard headers. The API key is attached only
// when withAuth is set; the health endpoint never sends credentials.
func (c *Client) setHeaders(req *http.Request, withAuth bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if withAuth && c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
