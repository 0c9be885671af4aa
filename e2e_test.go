//go:build e2e

package stemsplit_test

// End-to-end tests against a running StemSplit deployment.
//
// By default they target the public deployment. To run against another
// instance:
//
//	STEMSPLIT_URL=http://localhost:8000 go test -tags e2e ./...
//
// The separation test uploads a real file and is skipped unless
// STEMSPLIT_E2E_FILE points at an audio file.

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stemsplit "github.com/stemsplit/stemsplit-go"
)

func e2eBaseURL() string {
	return os.Getenv("STEMSPLIT_URL")
}

func newE2EClient(t *testing.T) *stemsplit.Client {
	t.Helper()
	opts := []stemsplit.Option{stemsplit.WithTimeout(10 * time.Minute)}
	if key := os.Getenv("STEMSPLIT_API_KEY"); key != "" {
		opts = append(opts, stemsplit.WithAPIKey(key))
	}
	client, err := stemsplit.NewClient(e2eBaseURL(), opts...)
	require.NoError(t, err)
	return client
}

func TestHealth_E2E(t *testing.T) {
	client := newE2EClient(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err, "health check should succeed")

	assert.NotEmpty(t, health.Status)
	t.Logf("health: status=%s version=%s service=%s", health.Status, health.Version, health.Service)

	if health.Version != "" {
		result := stemsplit.CheckCompatibility(health.Version)
		t.Logf("compatibility: %s (%s)", result.Status, result.Message)
	}
}

func TestSeparate_E2E(t *testing.T) {
	path := os.Getenv("STEMSPLIT_E2E_FILE")
	if path == "" {
		t.Skip("set STEMSPLIT_E2E_FILE to an audio file to run the separation test")
	}

	client := newE2EClient(t)
	ctx := context.Background()

	result, err := client.Separate(ctx, stemsplit.FileFromPath(path),
		&stemsplit.SeparationOptions{Stems: stemsplit.TwoStems})
	require.NoError(t, err)
	require.NotEmpty(t, result.JobID)
	require.NotEmpty(t, result.OutputFiles)
	t.Logf("job %s finished in %.1fs: %v", result.JobID, result.ProcessingTime, result.OutputFiles)

	data, err := client.DownloadStem(ctx, result.JobID, result.OutputFiles[0])
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
