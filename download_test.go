package stemsplit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stemsplit "github.com/stemsplit/stemsplit-go"
)

func TestStemDownloadURL(t *testing.T) {
	client, err := stemsplit.NewClient("https://stemsplit.example.com")
	require.NoError(t, err)

	url, err := client.StemDownloadURL("job-1", "vocals.wav")
	require.NoError(t, err)
	assert.Equal(t, "https://stemsplit.example.com/api/v1/separate/job-1/download/vocals.wav", url)
}

// TestStemDownloadURL_DefaultBase verifies a zero-config client builds
// download URLs against the public deployment.
func TestStemDownloadURL_DefaultBase(t *testing.T) {
	client, err := stemsplit.NewClient("")
	require.NoError(t, err)

	url, err := client.StemDownloadURL("job-1", "vocals.wav")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, stemsplit.DefaultBaseURL))
	assert.Contains(t, url, "/download/vocals.wav")
}

func TestStemDownloadURL_StripsDirectoryPrefix(t *testing.T) {
	client, err := stemsplit.NewClient("https://stemsplit.example.com")
	require.NoError(t, err)

	url, err := client.StemDownloadURL("job-1", "out/stems/drums.wav")
	require.NoError(t, err)
	assert.Equal(t, "https://stemsplit.example.com/api/v1/separate/job-1/download/drums.wav", url)
}

func TestStemDownloadURL_EncodesSegments(t *testing.T) {
	client, err := stemsplit.NewClient("https://stemsplit.example.com")
	require.NoError(t, err)

	url, err := client.StemDownloadURL("job 1", "my song.wav")
	require.NoError(t, err)
	assert.Equal(t, "https://stemsplit.example.com/api/v1/separate/job%201/download/my%20song.wav", url)
}

// TestStemDownloadURL_TraversalJobID verifies job ids containing path
// separators or ".." are rejected without any request.
func TestStemDownloadURL_TraversalJobID(t *testing.T) {
	client, err := stemsplit.NewClient("https://stemsplit.example.com")
	require.NoError(t, err)

	for _, jobID := range []string{"..", "../other", "a/b", `a\b`, "", "  "} {
		_, err := client.StemDownloadURL(jobID, "vocals.wav")
		requireInvalidArgument(t, err)
	}
}

func TestStemDownloadURL_TraversalFilename(t *testing.T) {
	client, err := stemsplit.NewClient("https://stemsplit.example.com")
	require.NoError(t, err)

	for _, name := range []string{"../vocals.wav", "..", "", "dir/"} {
		_, err := client.StemDownloadURL("job-1", name)
		requireInvalidArgument(t, err)
	}
}

func TestDownloadStem_Success(t *testing.T) {
	audio := []byte("RIFF fake wav bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/separate/job-1/download/vocals.wav", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "audio/wav")
		_, _ = w.Write(audio)
	}))
	defer server.Close()

	client, err := stemsplit.NewClient(server.URL, stemsplit.WithAPIKey("sk-test"))
	require.NoError(t, err)

	data, err := client.DownloadStem(context.Background(), "job-1", "vocals.wav")
	require.NoError(t, err)
	assert.Equal(t, audio, data)
}

func TestDownloadStem_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		mustEncode(w, map[string]string{"detail": "job not found"})
	}))
	defer server.Close()

	client, err := stemsplit.NewClient(server.URL)
	require.NoError(t, err)

	data, err := client.DownloadStem(context.Background(), "job-1", "vocals.wav")
	require.Error(t, err)
	assert.Nil(t, data)

	var apiErr *stemsplit.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, stemsplit.KindAPIError, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "job not found", apiErr.Message)
}

func TestDownloadStem_InvalidJobID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	}))
	defer server.Close()

	client, err := stemsplit.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.DownloadStem(context.Background(), "../job", "vocals.wav")
	requireInvalidArgument(t, err)
}
