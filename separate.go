package stemsplit

import (
	"context"
	"io"
	"net/http"
)

// Separate uploads one audio file and runs stem separation on it.
//
// The call blocks until the server finishes the job, so it can run for
// as long as the configured timeout allows. Exactly one upload is
// performed; nothing is retried.
//
// Example:
//
//	result, err := client.Separate(ctx,
//	    stemsplit.FileFromPath("song.mp3"),
//	    &stemsplit.SeparationOptions{
//	        Stems:  stemsplit.FourStems,
//	        Format: stemsplit.FormatWAV,
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, name := range result.OutputFiles {
//	    fmt.Println(name)
//	}
//
// opts may be nil, in which case the server's defaults apply.
func (c *Client) Separate(ctx context.Context, input *FileInput, opts *SeparationOptions) (*SeparationResult, error) {
	if err := validateFileInput(input); err != nil {
		return nil, err
	}
	filename, err := uploadName(input, opts)
	if err != nil {
		return nil, err
	}

	body, contentType, err := c.encoder.encode(input, filename)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + separatePath
	if query := buildQuery(opts); len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		closeIfCloser(body)
		return nil, newError(KindInvalidArgument, "failed to create request", 0, err)
	}
	req.Header.Set("Content-Type", contentType)
	c.setHeaders(req, true)

	resp, err := c.transport.roundTrip(req, c.timeout)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiErrorFromResponse(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mapTransportError(err, "failed to read separation response")
	}
	return parseSeparationResponse(raw)
}
