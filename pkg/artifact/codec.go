// Package artifact decodes built-archive filenames, inventories the installed
// packages that carry sbopak's tag, and inspects built archives.
//
// Artifact filenames follow the grammar
//
//	<prgnam>-<version>-<arch>-<build>_SBo[.tgz]
//
// where prgnam may itself contain hyphens and underscores, version may
// contain dots and underscores but no hyphens, arch is one of the fixed
// architecture tokens, and build is one or more digits. The _SBo tag marks
// the archive as managed by this tool.
package artifact

import (
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/platform"
)

const (
	// Tag marks artifacts managed by this ecosystem.
	Tag = "_SBo"

	// Extension is the built-archive filename extension.
	Extension = ".tgz"
)

// Ref identifies the package an artifact was built from.
type Ref struct {
	Identifier string // canonical "category/name"
	Name       string // bare prgnam
	Version    string
}

// NameResolver is the subset of the repository index the codec needs to
// disambiguate hyphenated package names.
type NameResolver interface {
	Resolve(name string) (string, error)
}

// ParseFilename decodes an artifact filename into the package it was built
// from. Because prgnam may contain hyphens indistinguishable from the
// version boundary, successively longer hyphen-joined prefixes are tried
// until the repository index confirms one as an existing package name. A
// filename without the _SBo tag, or whose prefixes match no known package,
// is not managed by this tool and yields ErrNotManaged.
func ParseFilename(filename string, index NameResolver) (*Ref, error) {
	name := strings.TrimSuffix(filename, Extension)

	segments := strings.Split(name, "-")
	if len(segments) < 4 {
		return nil, errors.Wrapf(errors.ErrNotManaged, "%s does not follow the artifact naming convention", filename)
	}

	build := segments[len(segments)-1]
	if !strings.HasSuffix(build, Tag) || !isDigits(strings.TrimSuffix(build, Tag)) {
		return nil, errors.Wrapf(errors.ErrNotManaged, "%s is not tagged %s", filename, Tag)
	}

	arch := segments[len(segments)-2]
	if !platform.ValidArch(arch) {
		return nil, errors.Wrapf(errors.ErrNotManaged, "%s has no recognizable architecture token", filename)
	}

	for i := 1; i <= len(segments)-3; i++ {
		prgnam := strings.Join(segments[:i], "-")
		identifier, err := index.Resolve(prgnam)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		version := strings.Join(segments[i:len(segments)-2], "-")
		if strings.Contains(version, "-") {
			continue
		}
		return &Ref{Identifier: identifier, Name: prgnam, Version: version}, nil
	}

	return nil, errors.Wrapf(errors.ErrNotManaged, "no known package matches %s", filename)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
