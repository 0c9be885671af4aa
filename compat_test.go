package stemsplit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stemsplit "github.com/stemsplit/stemsplit-go"
)

// TestVersion_Constants verifies version constants are set correctly.
func TestVersion_Constants(t *testing.T) {
	assert.NotEmpty(t, stemsplit.Version, "Version should not be empty")
	assert.NotEmpty(t, stemsplit.APIVersion, "APIVersion should not be empty")
	assert.NotEmpty(t, stemsplit.APIVersionRange, "APIVersionRange should not be empty")

	// The targeted API version must itself be inside the supported range.
	assert.True(t, stemsplit.IsCompatible(stemsplit.APIVersion))
}

// TestIsCompatible tests the IsCompatible convenience function.
func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{"exact target version", "1.0.0", true},
		{"patch version in range", "1.0.1", true},
		{"high patch in range", "1.0.99", true},
		{"version too new", "1.1.0", false},
		{"major version mismatch", "2.0.0", false},
		{"version too old", "0.9.0", false},
		{"empty version", "", false},
		{"invalid version", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stemsplit.IsCompatible(tt.version)
			assert.Equal(t, tt.compatible, result, "IsCompatible(%q) should return %v", tt.version, tt.compatible)
		})
	}
}

func TestCheckCompatibility_Compatible(t *testing.T) {
	result := stemsplit.CheckCompatibility("1.0.2")

	assert.Equal(t, stemsplit.Compatible, result.Status)
	assert.True(t, result.IsCompatible())
	assert.Equal(t, "1.0.2", result.ServerVersion)
	assert.Equal(t, stemsplit.Version, result.SDKVersion)
	assert.Equal(t, stemsplit.APIVersion, result.TargetAPIVersion)
	assert.Equal(t, stemsplit.APIVersionRange, result.SupportedRange)
	assert.Contains(t, result.Message, "compatible")
}

func TestCheckCompatibility_Incompatible(t *testing.T) {
	for _, version := range []string{"0.9.9", "1.1.0", "2.0.0"} {
		t.Run(version, func(t *testing.T) {
			result := stemsplit.CheckCompatibility(version)

			assert.Equal(t, stemsplit.Incompatible, result.Status)
			assert.False(t, result.IsCompatible())
			assert.Contains(t, result.Message, "not compatible")
		})
	}
}

func TestCheckCompatibility_Unknown(t *testing.T) {
	for _, version := range []string{"", "not-a-version", "abc.def.ghi"} {
		t.Run("unparseable "+version, func(t *testing.T) {
			result := stemsplit.CheckCompatibility(version)

			assert.Equal(t, stemsplit.Unknown, result.Status)
			assert.False(t, result.IsCompatible())
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestCompatibilityStatus_String(t *testing.T) {
	assert.Equal(t, "compatible", stemsplit.Compatible.String())
	assert.Equal(t, "incompatible", stemsplit.Incompatible.String())
	assert.Equal(t, "unknown", stemsplit.Unknown.String())
	assert.Equal(t, "unknown", stemsplit.CompatibilityStatus(99).String())
}

func TestMustBeCompatible(t *testing.T) {
	require.NotPanics(t, func() {
		stemsplit.MustBeCompatible("1.0.0")
	})
	require.Panics(t, func() {
		stemsplit.MustBeCompatible("0.1.0")
	})
	require.Panics(t, func() {
		stemsplit.MustBeCompatible("invalid")
	})
}
