// Package build implements the build/install pipeline: staging a package's
// files and verified sources, driving its SlackBuild script, and installing
// or removing the resulting archives with the Slackware package tools.
package build

import (
	"context"
	"crypto/md5" //nolint:gosec // descriptor checksums are MD5 by format
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/config"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/sbopak/sbopak/pkg/pkginfo"
)

// Downloader fetches one source URL into a directory.
type Downloader interface {
	Fetch(ctx context.Context, rawURL, destDir string) (string, error)
}

// Stager prepares the scratch directory a package is built from.
type Stager struct {
	dl  Downloader
	cfg *config.Config
}

// NewStager returns a Stager downloading through dl into cfg.TmpDir.
func NewStager(dl Downloader, cfg *config.Config) *Stager {
	return &Stager{dl: dl, cfg: cfg}
}

// Stage creates a fresh staging directory for pkg, copies the descriptor
// directory into it (nested patch trees included), downloads every source
// and verifies its MD5 checksum. A mismatch or a failed download aborts
// before any build step can run. Returns the staging directory path.
func (s *Stager) Stage(ctx context.Context, pkg *pkginfo.Package) (string, error) {
	stagingDir := filepath.Join(s.cfg.TmpDir, pkg.Name)
	if err := fsutil.RecreateDir(stagingDir); err != nil {
		return "", err
	}
	if err := fsutil.CopyTree(pkg.Directory, stagingDir); err != nil {
		return "", err
	}

	for i, rawURL := range pkg.SourceURLs {
		logger.Debugf("Fetching %s", rawURL)
		path, err := s.dl.Fetch(ctx, rawURL, stagingDir)
		if err != nil {
			return "", err
		}
		sum, err := md5File(path)
		if err != nil {
			return "", err
		}
		expected := strings.ToLower(pkg.SourceChecksums[i])
		if sum != expected {
			return "", errors.Wrapf(errors.ErrChecksumMismatch,
				"%s: expected %s, got %s", rawURL, expected, sum)
		}
	}

	return stagingDir, nil
}

func md5File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s for checksum", path)
	}
	defer func() { _ = f.Close() }()

	h := md5.New() //nolint:gosec
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
