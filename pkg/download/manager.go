// Package download fetches package source archives over HTTP into a staging
// directory. It is deliberately minimal: one URL at a time, no retries, no
// mirrors — any failure is fatal to the operation that requested it.
package download

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/fsutil"
)

// Manager is an HTTP-based source downloader.
type Manager struct {
	client    *http.Client
	userAgent string

	// Progress draws a progress bar on stderr while downloading.
	Progress bool
}

// NewManager creates a new download manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *Manager {
	if userAgent == "" {
		userAgent = "sbopak/1.0"
	}
	return &Manager{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch downloads rawURL into destDir and returns the path of the downloaded
// file. The file keeps the URL's base name. A non-existent remote resource
// (any non-200 response) is fatal.
func (m *Manager) Fetch(ctx context.Context, rawURL, destDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(errors.ErrDownloadFailed, "invalid URL %s: %v", rawURL, err)
	}
	filename := path.Base(u.Path)
	if filename == "" || filename == "." || filename == "/" {
		return "", errors.Wrapf(errors.ErrDownloadFailed, "cannot derive a filename from %s", rawURL)
	}
	if err := fsutil.EnsureDir(destDir); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", errors.Wrapf(errors.ErrDownloadFailed, "failed to create request for %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", m.userAgent)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(errors.ErrDownloadFailed, "%s: %v", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrDownloadFailed, "%s: unexpected status code %d", rawURL, resp.StatusCode)
	}

	absPath := filepath.Join(destDir, filename)
	tmpPath, err := m.writeBody(resp, absPath, filename)
	if err != nil {
		return "", err
	}
	if err := fsutil.Move(tmpPath, absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (m *Manager) writeBody(resp *http.Response, absPath, filename string) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "dl-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	var dst io.Writer = tmp
	if m.Progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, filename)
		dst = io.MultiWriter(tmp, bar)
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(errors.ErrDownloadFailed, "failed to write %s: %v", absPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}
