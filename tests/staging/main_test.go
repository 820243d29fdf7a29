//go:build staging

package staging

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var (
	stagingURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	// Diagnostics server URL, defaulting to a local run of cmd/app
	stagingURL = os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = "http://localhost:8080"
	}

	client = &http.Client{
		Timeout: 10 * time.Second,
	}

	os.Exit(m.Run())
}

// get issues a GET against the staging server and returns the drained body
func get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	url := fmt.Sprintf("%s%s", stagingURL, path)
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("Failed to make request to %s: %v", url, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return resp, body
}
