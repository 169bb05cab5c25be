package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sbopak/sbopak/pkg/executor"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePkgtools puts upgradepkg/removepkg stand-ins on PATH that record their
// arguments and the ROOT they saw.
func fakePkgtools(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	logPath := filepath.Join(binDir, "pkgtools.log")
	script := "#!/bin/sh\necho \"$0 $@ ROOT=$ROOT\" >> " + logPath + "\n"
	for _, tool := range []string{"upgradepkg", "removepkg"} {
		require.NoError(t, os.WriteFile(filepath.Join(binDir, tool), []byte(script), fsutil.FileModeExec))
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("ROOT", "")
	return logPath
}

func pkgtoolsCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestInstall(t *testing.T) {
	logPath := fakePkgtools(t)
	archive := filepath.Join(t.TempDir(), "htop-3.2.2-x86_64-1_SBo.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("tgz"), fsutil.FileModeDefault))

	i := NewPkgtoolsInstaller(executor.New(), "/", false)
	require.NoError(t, i.Install(context.Background(), archive))

	calls := pkgtoolsCalls(t, logPath)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "upgradepkg --reinstall --install-new "+archive)
	assert.True(t, strings.HasSuffix(calls[0], "ROOT="), "no ROOT expected on the live system: %s", calls[0])

	// cleanup off: the archive survives
	assert.FileExists(t, archive)
}

func TestInstallCleanupConsumesArchive(t *testing.T) {
	fakePkgtools(t)
	archive := filepath.Join(t.TempDir(), "htop-3.2.2-x86_64-1_SBo.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("tgz"), fsutil.FileModeDefault))

	i := NewPkgtoolsInstaller(executor.New(), "/", true)
	require.NoError(t, i.Install(context.Background(), archive))
	assert.NoFileExists(t, archive)
}

func TestInstallAlternateRoot(t *testing.T) {
	logPath := fakePkgtools(t)
	archive := filepath.Join(t.TempDir(), "htop-3.2.2-x86_64-1_SBo.tgz")
	require.NoError(t, os.WriteFile(archive, []byte("tgz"), fsutil.FileModeDefault))

	i := NewPkgtoolsInstaller(executor.New(), "/mnt/target", false)
	require.NoError(t, i.Install(context.Background(), archive))

	calls := pkgtoolsCalls(t, logPath)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "ROOT=/mnt/target")
}

func TestRemove(t *testing.T) {
	logPath := fakePkgtools(t)

	i := NewPkgtoolsInstaller(executor.New(), "/", true)
	require.NoError(t, i.Remove(context.Background(), "htop-3.2.2-x86_64-1_SBo"))

	calls := pkgtoolsCalls(t, logPath)
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "removepkg htop-3.2.2-x86_64-1_SBo")
}
