package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("source tarball bytes"))
	}))
	defer server.Close()

	destDir := filepath.Join(t.TempDir(), "staging")
	m := NewManager(10*time.Second, "")

	got, err := m.Fetch(context.Background(), server.URL+"/src/htop-3.2.2.tar.gz", destDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(destDir, "htop-3.2.2.tar.gz"), got)
	assert.Equal(t, "sbopak/1.0", gotUserAgent)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "source tarball bytes", string(data))

	// No temp files left behind.
	matches, err := filepath.Glob(filepath.Join(destDir, "dl-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFetchCustomUserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	m := NewManager(10*time.Second, "wget/1.21")
	_, err := m.Fetch(context.Background(), server.URL+"/file.tar.gz", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "wget/1.21", gotUserAgent)
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	m := NewManager(10*time.Second, "")
	_, err := m.Fetch(context.Background(), server.URL+"/gone.tar.gz", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUnreachableHost(t *testing.T) {
	m := NewManager(time.Second, "")
	_, err := m.Fetch(context.Background(), "http://127.0.0.1:1/file.tar.gz", t.TempDir())
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestFetchBadFilename(t *testing.T) {
	m := NewManager(time.Second, "")
	_, err := m.Fetch(context.Background(), "https://example.com/", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "filename")
}
