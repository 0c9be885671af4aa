package stemsplit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// maxErrorBodySize limits how much of an error response body is read.
// 4KB is enough for any reasonable error message while bounding what a
// misbehaving server can make us buffer.
const maxErrorBodySize = 4096

// separationEnvelope holds the raw response fields. Only the success
// flag is decoded strictly; everything else is json.RawMessage and
// decoded leniently in a second pass, so a type mismatch in an optional
// field degrades to a default instead of failing the whole response.
type separationEnvelope struct {
	Success        *bool           `json:"success"`
	Message        json.RawMessage `json:"message"`
	JobID          json.RawMessage `json:"job_id"`
	Stems          json.RawMessage `json:"stems"`
	OutputFiles    json.RawMessage `json:"output_files"`
	ProcessingTime json.RawMessage `json:"processing_time"`
	Status         json.RawMessage `json:"status"`
}

// parseSeparationResponse validates a 2xx separation response body.
//
// Required: an explicit success flag, a non-blank job_id and an
// output_files array. Optional fields default: message to "", stems to
// TwoStems, processing_time to 0; malformed output_files entries are
// dropped rather than failing the response.
func parseSeparationResponse(body []byte) (*SeparationResult, error) {
	var env separationEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(KindInvalidResponse, "response is not a JSON object", 0, errors.Wrap(err, "decode separation response"))
	}

	if env.Success != nil && !*env.Success {
		message := stringField(env.Message, "separation failed")
		return nil, newError(KindAPIError, message, intField(env.Status, 0), nil)
	}
	if env.Success == nil {
		return nil, newError(KindInvalidResponse, "response missing success flag", 0, nil)
	}

	jobID, ok := stringValue(env.JobID)
	if !ok || strings.TrimSpace(jobID) == "" {
		return nil, newError(KindInvalidResponse, "response missing job_id", 0, nil)
	}

	if len(env.OutputFiles) == 0 || string(env.OutputFiles) == "null" {
		return nil, newError(KindInvalidResponse, "response missing output_files", 0, nil)
	}
	var rawFiles []json.RawMessage
	if err := json.Unmarshal(env.OutputFiles, &rawFiles); err != nil {
		return nil, newError(KindInvalidResponse, "output_files is not a list", 0, errors.Wrap(err, "decode output_files"))
	}
	files := make([]string, 0, len(rawFiles))
	for _, raw := range rawFiles {
		if name, ok := stringValue(raw); ok && name != "" {
			files = append(files, name)
		}
	}

	stems := TwoStems
	if s, ok := stringValue(env.Stems); ok && StemCount(s).Valid() {
		stems = StemCount(s)
	}

	return &SeparationResult{
		Message:        stringField(env.Message, ""),
		JobID:          jobID,
		Stems:          stems,
		OutputFiles:    files,
		ProcessingTime: floatField(env.ProcessingTime, 0),
	}, nil
}

// apiErrorFromResponse turns a non-2xx response into an API error,
// pulling a human message out of common error payload shapes with a
// bounded body read.
func apiErrorFromResponse(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	message := errorMessageFromBody(body)
	if message == "" {
		message = fmt.Sprintf("API error: %d", resp.StatusCode)
	}
	return newError(KindAPIError, message, resp.StatusCode, nil)
}

func errorMessageFromBody(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}

func stringValue(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func stringField(raw json.RawMessage, fallback string) string {
	if s, ok := stringValue(raw); ok {
		return s
	}
	return fallback
}

func intField(raw json.RawMessage, fallback int) int {
	if len(raw) == 0 {
		return fallback
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return fallback
	}
	return n
}

func floatField(raw json.RawMessage, fallback float64) float64 {
	if len(raw) == 0 {
		return fallback
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f < 0 {
		return fallback
	}
	return f
}
