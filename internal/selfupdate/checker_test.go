package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/inkling-app/inkling/releases/latest", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://example.com/` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheckUpdateAvailable(t *testing.T) {
	server := fakeReleaseServer(t, "v2.1.0")
	checker := NewChecker(WithBaseURLs(server.URL, server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v2.1.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
}

func TestCheckAlreadyCurrent(t *testing.T) {
	server := fakeReleaseServer(t, "v2.1.0")
	checker := NewChecker(WithBaseURLs(server.URL, server.URL))

	for _, version := range []string{"v2.1.0", "2.1.0", "v3.0.0"} {
		result, err := checker.Check(context.Background(), &CheckInput{Version: version})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable, "version %s", version)
	}
}

func TestCheckInvalidCurrentVersion(t *testing.T) {
	// Unparsable versions compare as lowest, so any release triggers an update.
	server := fakeReleaseServer(t, "v0.0.1")
	checker := NewChecker(WithBaseURLs(server.URL, server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "not-a-version"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURLs(server.URL, server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestCheckMissingTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURLs(server.URL, server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tag name")
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1"},
		{"(devel)", "v0.0.0"},
		{"", "v0.0.0"},
		{"garbage", "v0.0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in), "input %q", tt.in)
	}
}
