package stemsplit

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CompatibilityStatus classifies a server version against the SDK's
// supported range.
type CompatibilityStatus int

const (
	// Unknown means the server version could not be parsed.
	Unknown CompatibilityStatus = iota

	// Compatible means the server version is inside APIVersionRange.
	Compatible

	// Incompatible means the server version is outside APIVersionRange.
	Incompatible
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes how a server version relates to this
// SDK version.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible returns true only when Status is Compatible.
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility reports whether a server version falls inside
// [APIVersionRange].
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("invalid supported range %q: %v", APIVersionRange, err)
		return result
	}

	version, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q", serverVersion)
		return result
	}

	if constraint.Check(version) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with supported range %s", serverVersion, APIVersionRange)
	}
	return result
}

// IsCompatible is shorthand for CheckCompatibility(v).IsCompatible().
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// MustBeCompatible panics when the server version is outside the
// supported range. Intended for startup assertions.
func MustBeCompatible(serverVersion string) {
	if result := CheckCompatibility(serverVersion); !result.IsCompatible() {
		panic("stemsplit: " + result.Message)
	}
}

// CheckServerCompatibility reads the server version from the health
// endpoint and checks it against [APIVersionRange].
func (c *Client) CheckServerCompatibility(ctx context.Context) (CompatibilityResult, error) {
	health, err := c.Health(ctx)
	if err != nil {
		return CompatibilityResult{}, err
	}
	return CheckCompatibility(health.Version), nil
}
