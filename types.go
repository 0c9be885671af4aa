package stemsplit

// StemCount is the number of stems a separation job produces.
//
// The zero value means "unset": the option is omitted from the request
// and the server applies its own default.
type StemCount string

const (
	// TwoStems splits into vocals and accompaniment.
	TwoStems StemCount = "2stems"

	// FourStems splits into vocals, drums, bass and other.
	FourStems StemCount = "4stems"

	// FiveStems splits into vocals, drums, bass, piano and other.
	FiveStems StemCount = "5stems"
)

// Valid reports whether s is one of the recognized stem counts.
func (s StemCount) Valid() bool {
	switch s {
	case TwoStems, FourStems, FiveStems:
		return true
	default:
		return false
	}
}

// OutputFormat is the audio format of the separated stems.
//
// The zero value means "unset": the option is omitted from the request
// and the server applies its own default.
type OutputFormat string

const (
	FormatWAV  OutputFormat = "wav"
	FormatMP3  OutputFormat = "mp3"
	FormatFLAC OutputFormat = "flac"
	FormatM4A  OutputFormat = "m4a"
	FormatAAC  OutputFormat = "aac"
	FormatOGG  OutputFormat = "ogg"
)

// Valid reports whether f is one of the supported output formats.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatWAV, FormatMP3, FormatFLAC, FormatM4A, FormatAAC, FormatOGG:
		return true
	default:
		return false
	}
}

// SeparationOptions tunes one separation request. All fields are
// optional; unrecognized values are omitted rather than rejected, so
// the server falls back to its own defaults.
type SeparationOptions struct {
	// Filename is the fallback name attached to the uploaded file when
	// the input itself carries no usable name.
	Filename string

	// Stems selects how many stems to separate into.
	Stems StemCount

	// Bitrate is the output bitrate for lossy formats, e.g. "320k".
	Bitrate string

	// Format selects the audio format of the output stems.
	Format OutputFormat
}

// SeparationResult is the outcome of a finished separation job.
//
// A SeparationResult only exists for a successful response with a valid
// job id; [Client.Separate] fails otherwise.
type SeparationResult struct {
	// Message is the human-readable server message, empty when the
	// server sent none.
	Message string

	// JobID identifies the job for later downloads. Never empty.
	JobID string

	// Stems is the stem count the server actually used.
	Stems StemCount

	// OutputFiles lists the produced stem filenames, in server order.
	OutputFiles []string

	// ProcessingTime is the server-side processing duration in
	// seconds. Never negative.
	ProcessingTime float64
}

// HealthResponse represents the liveness status of the StemSplit API.
//
// Use [Client.Health] to retrieve it:
//
//	health, err := client.Health(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s v%s\n", health.Status, health.Version)
type HealthResponse struct {
	// Status indicates the overall health status.
	// Values: "ok" (healthy) or "error" (unhealthy).
	Status string `json:"status"`

	// Version is the StemSplit server version, when reported.
	Version string `json:"version"`

	// Service is the service name, when reported.
	Service string `json:"service"`
}

// IsHealthy returns true if the overall status is "ok".
func (h *HealthResponse) IsHealthy() bool {
	return h.Status == StatusOK
}

// Health status values.
const (
	// StatusOK indicates the service is healthy.
	StatusOK = "ok"

	// StatusError indicates the service has an error.
	StatusError = "error"
)
