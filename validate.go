package stemsplit

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// normalizeBaseURL trims whitespace and trailing slashes and verifies
// the result is a well-formed URI. The normalized value is the fixed
// prefix for every endpoint path, so it must never end in "/".
// Idempotent: normalizing an already-normalized URL is a no-op.
func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalidArgument("base URL is required")
	}

	normalized := strings.TrimRight(trimmed, "/")
	if normalized == "" || !strfmt.Default.Validates("uri", normalized) {
		return "", invalidArgument("base URL is not a valid URI: " + trimmed)
	}
	return normalized, nil
}

// validateJobID rejects job ids that are empty or could escape their
// URL path segment. Job ids are interpolated directly into download
// URLs, so path separators and ".." are refused outright.
func validateJobID(id string) error {
	if strings.TrimSpace(id) == "" {
		return invalidArgument("job id is required")
	}
	if strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return invalidArgument("job id contains path separators: " + id)
	}
	return nil
}

// sanitizeFilename reduces a filename to a safe basename. Any directory
// prefix is stripped (text after the last "/" or "\" is kept); a ".."
// anywhere in the raw input is refused before stripping.
func sanitizeFilename(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", invalidArgument("filename must not contain '..': " + name)
	}

	base := name
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		base = name[i+1:]
	}
	if strings.TrimSpace(base) == "" {
		return "", invalidArgument("filename is empty after sanitizing: " + name)
	}
	return base, nil
}

// validateFileInput rejects absent or empty inputs before any file or
// network I/O happens. A bytes or reader input with nothing behind it
// is reported as empty data, not as a missing path.
func validateFileInput(in *FileInput) error {
	switch {
	case in == nil:
		return invalidArgument("file input is required")
	case in.reader != nil || in.data != nil:
		return nil
	case in.name != "" && in.path == "":
		return invalidArgument("file data is empty")
	case strings.TrimSpace(in.path) == "":
		return invalidArgument("file path is empty")
	default:
		return nil
	}
}

func validateTimeout(d time.Duration) error {
	if d < time.Millisecond {
		return invalidArgument("timeout must be at least 1ms")
	}
	return nil
}
