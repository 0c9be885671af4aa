package stemsplit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Health checks API liveness.
//
// The check runs under its own fixed 10 second timeout, independent of
// the configured client timeout, and sends no credentials.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, http.NoBody)
	if err != nil {
		return nil, newError(KindInvalidArgument, "failed to create request", 0, err)
	}
	c.setHeaders(req, false)

	resp, err := c.transport.roundTrip(req, healthTimeout)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFromResponse(resp)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, newError(KindInvalidResponse, "invalid health payload", 0, errors.Wrap(err, "decode health response"))
	}
	return &health, nil
}
