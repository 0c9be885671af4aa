package stemsplit

import "io"

// Exports for black-box tests of internal logic.
var (
	NormalizeBaseURL = normalizeBaseURL
	ValidateJobID    = validateJobID
	SanitizeFilename = sanitizeFilename
	ValidateTimeout  = validateTimeout

	BuildQuery              = buildQuery
	ParseSeparationResponse = parseSeparationResponse
	MapTransportError       = mapTransportError
)

// EncodeMultipart runs one of the two form encoders directly so tests
// can compare their output.
func EncodeMultipart(buffered bool, in *FileInput, filename string) (io.Reader, string, error) {
	var encoder formEncoder = streamEncoder{}
	if buffered {
		encoder = bufferEncoder{}
	}
	return encoder.encode(in, filename)
}
