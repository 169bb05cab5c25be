package pkginfo

import (
	"path/filepath"
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/repository"
)

const (
	// ReadmeMarker in REQUIRES signals dependencies described only in the
	// package's README. It never survives into Package.Requires.
	ReadmeMarker = "%README%"

	// Sentinels an architecture-specific download list may consist of when
	// no build is possible on that architecture.
	sentinelUnsupported = "UNSUPPORTED"
	sentinelUntested    = "UNTESTED"
)

// Loader resolves package names through the repository index and parses their
// descriptors into Package records. Records are cached per identifier; the
// bypass flag forces a fresh parse after a descriptor changed on disk.
type Loader struct {
	index *repository.Index
	arch  string
	cache map[string]*Package
}

// NewLoader returns a Loader for the given index and host architecture token.
func NewLoader(index *repository.Index, arch string) *Loader {
	return &Loader{
		index: index,
		arch:  arch,
		cache: make(map[string]*Package),
	}
}

// Load resolves nameOrIdentifier and returns its normalized Package record.
func (l *Loader) Load(nameOrIdentifier string, bypassCache bool) (*Package, error) {
	identifier, err := l.index.Resolve(nameOrIdentifier)
	if err != nil {
		return nil, err
	}
	if !bypassCache {
		if pkg, ok := l.cache[identifier]; ok {
			return pkg, nil
		}
	}

	pkg, err := l.load(identifier)
	if err != nil {
		return nil, err
	}
	l.cache[identifier] = pkg
	return pkg, nil
}

func (l *Loader) load(identifier string) (*Package, error) {
	category, name, _ := strings.Cut(identifier, "/")
	dir := l.index.Dir(identifier)

	pkg := &Package{
		Name:            name,
		Category:        category,
		Identifier:      identifier,
		Directory:       dir,
		InfoFile:        filepath.Join(dir, name+".info"),
		BuildScriptFile: filepath.Join(dir, name+".SlackBuild"),
		SlackDescFile:   filepath.Join(dir, "slack-desc"),
		ReadmeFile:      filepath.Join(dir, "README"),
	}

	values, err := ParseDescriptor(pkg.InfoFile)
	if err != nil {
		return nil, err
	}

	pkg.Version = values["VERSION"]
	pkg.Homepage = values["HOMEPAGE"]
	pkg.MaintainerName = values["MAINTAINER"]
	pkg.MaintainerEmail = values["EMAIL"]

	pkg.DownloadURLs = strings.Fields(values["DOWNLOAD"])
	pkg.Checksums = strings.Fields(values["MD5SUM"])
	if len(pkg.DownloadURLs) != len(pkg.Checksums) {
		return nil, errors.Wrapf(errors.ErrDescriptorParse,
			"%s: DOWNLOAD lists %d entries but MD5SUM lists %d", pkg.InfoFile, len(pkg.DownloadURLs), len(pkg.Checksums))
	}

	if err := l.applyArchOverride(pkg, values); err != nil {
		return nil, err
	}

	for _, dep := range strings.Fields(values["REQUIRES"]) {
		if dep == ReadmeMarker {
			pkg.HasExtraUndeclaredDeps = true
			continue
		}
		pkg.Requires = append(pkg.Requires, dep)
	}

	return pkg, nil
}

// applyArchOverride derives the effective source lists. When the descriptor
// defines both DOWNLOAD_<arch> and MD5SUM_<arch> for the host architecture
// they take precedence over the generic lists; a download list consisting
// solely of the unsupported sentinel clears the effective lists and marks the
// package unsupported.
func (l *Loader) applyArchOverride(pkg *Package, values map[string]string) error {
	archDownload := strings.Fields(values["DOWNLOAD_"+l.arch])
	archChecksum := strings.Fields(values["MD5SUM_"+l.arch])

	if len(archDownload) == 1 && isUnsupportedSentinel(archDownload[0]) {
		pkg.ArchDownloadURLs = archDownload
		pkg.UnsupportedOnArch = true
		return nil
	}

	if len(archDownload) > 0 && len(archChecksum) > 0 {
		if len(archDownload) != len(archChecksum) {
			return errors.Wrapf(errors.ErrDescriptorParse,
				"%s: DOWNLOAD_%s lists %d entries but MD5SUM_%s lists %d",
				pkg.InfoFile, l.arch, len(archDownload), l.arch, len(archChecksum))
		}
		pkg.ArchDownloadURLs = archDownload
		pkg.ArchChecksums = archChecksum
		pkg.SourceURLs = archDownload
		pkg.SourceChecksums = archChecksum
		return nil
	}

	pkg.SourceURLs = pkg.DownloadURLs
	pkg.SourceChecksums = pkg.Checksums
	return nil
}

func isUnsupportedSentinel(value string) bool {
	return value == sentinelUnsupported || value == sentinelUntested
}
