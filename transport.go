package stemsplit

import (
	"context"
	"io"
	"net/http"
	"time"
)

// transport issues one HTTP request under a deadline and maps every
// failure through the error mapper. The strategy is selected once in
// NewClient based on the injected http.Client.
type transport interface {
	roundTrip(req *http.Request, timeout time.Duration) (*http.Response, error)
}

// deadlineTransport enforces the timeout with a per-request context
// deadline, cancelling the in-flight request when the timer fires.
type deadlineTransport struct {
	client *http.Client
}

func (t deadlineTransport) roundTrip(req *http.Request, timeout time.Duration) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(req.Context(), timeout)

	resp, err := t.client.Do(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, mapTransportError(err, "request failed")
	}

	// The timer must outlive the body read; release it when the caller
	// closes the body.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

// clientTimeoutTransport defers to the http.Client's own Timeout. Used
// when the caller injects a client that already enforces one, so a
// second timer is never layered on top. Timeouts are still recognized
// structurally through net.Error.
type clientTimeoutTransport struct {
	client *http.Client
}

func (t clientTimeoutTransport) roundTrip(req *http.Request, _ time.Duration) (*http.Response, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, mapTransportError(err, "request failed")
	}
	return resp, nil
}
