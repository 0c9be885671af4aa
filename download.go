package stemsplit

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// StemDownloadURL returns the download URL for one output file of a
// finished job. Pure: no request is made, but both segments are
// validated against path traversal and percent-encoded.
func (c *Client) StemDownloadURL(jobID, filename string) (string, error) {
	if err := validateJobID(jobID); err != nil {
		return "", err
	}
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	return c.baseURL + separatePath + "/" + url.PathEscape(jobID) + "/download/" + url.PathEscape(name), nil
}

// DownloadStem fetches the raw audio bytes of one output file.
//
// The filename should come from [SeparationResult.OutputFiles]. The
// whole file is buffered in memory; stems are typically a few megabytes.
//
// Example:
//
//	data, err := client.DownloadStem(ctx, result.JobID, "vocals.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("vocals.wav", data, 0o644)
func (c *Client) DownloadStem(ctx context.Context, jobID, filename string) ([]byte, error) {
	endpoint, err := c.StemDownloadURL(jobID, filename)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, newError(KindInvalidArgument, "failed to create request", 0, err)
	}
	c.setHeaders(req, true)

	resp, err := c.transport.roundTrip(req, c.timeout)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiErrorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mapTransportError(err, "failed to read stem bytes")
	}
	return data, nil
}
