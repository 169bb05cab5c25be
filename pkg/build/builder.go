package build

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/executor"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/sbopak/sbopak/pkg/pkginfo"
)

// ScriptBuilder drives a package's SlackBuild script to produce an
// installable archive.
type ScriptBuilder struct {
	exec      *executor.Executor
	outputDir string
	arch      string
}

// NewScriptBuilder returns a builder that directs build output to outputDir.
func NewScriptBuilder(exec *executor.Executor, outputDir, arch string) *ScriptBuilder {
	return &ScriptBuilder{exec: exec, outputDir: outputDir, arch: arch}
}

// Build runs pkg's build script inside stagingDir with the version, the
// architecture and the output location exported in the environment. On
// success it returns the absolute path of the produced archive, located in
// the output directory by the artifact naming convention for the just-built
// (name, version).
func (b *ScriptBuilder) Build(ctx context.Context, pkg *pkginfo.Package, stagingDir string) (string, error) {
	if err := fsutil.EnsureDir(b.outputDir); err != nil {
		return "", err
	}

	script := pkg.Name + ".SlackBuild"
	cmd := exec.Command("sh", script)
	cmd.Dir = stagingDir
	cmd.Env = append(os.Environ(),
		"VERSION="+pkg.Version,
		"ARCH="+b.arch,
		"TMP="+b.outputDir,
		"OUTPUT="+b.outputDir,
	)

	logger.Infof("Building %s %s", pkg.Identifier, pkg.Version)
	if _, err := b.exec.Run(ctx, cmd); err != nil {
		return "", err
	}

	return b.findArtifact(pkg)
}

// findArtifact locates the archive the build script produced. The filename
// is fixed by convention; only the build number and the architecture the
// script settled on are unknown, so the newest match wins.
func (b *ScriptBuilder) findArtifact(pkg *pkginfo.Package) (string, error) {
	entries, err := os.ReadDir(b.outputDir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to list build output %s", b.outputDir)
	}

	prefix := pkg.Name + "-" + pkg.Version + "-"
	var newest string
	var newestTime time.Time
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) ||
			!strings.HasSuffix(name, artifact.Tag+artifact.Extension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = name
			newestTime = info.ModTime()
		}
	}
	if newest == "" {
		return "", errors.Wrapf(errors.ErrArtifactMissing,
			"no archive for %s %s under %s", pkg.Name, pkg.Version, b.outputDir)
	}
	return filepath.Join(b.outputDir, newest), nil
}
