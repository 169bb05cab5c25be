package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHook(t *testing.T, dir, phase, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, phase+".tengo"), []byte(script), fsutil.FileModeDefault))
}

func TestExecuteHookSeesPackageContext(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")

	// The hook writes the package globals it saw to a file.
	writeHook(t, dir, PostInstall, `
os := import("os")
pkg := import("pkg")
file := os.create("`+outPath+`")
file.write_string(pkg.identifier + " " + pkg.version + " " + pkg.operation)
file.close()
`)

	m := NewManager(dir)
	hctx := &Context{
		PackageName:    "htop",
		PackageVersion: "3.2.2",
		Identifier:     "system/htop",
		Operation:      "install",
		ArtifactPath:   "/tmp/htop-3.2.2-x86_64-1_SBo.tgz",
	}
	require.NoError(t, m.Run(PostInstall, hctx))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "system/htop 3.2.2 install", string(data))
}

func TestRunMissingHookIsNoop(t *testing.T) {
	m := NewManager(t.TempDir())
	assert.NoError(t, m.Run(PreBuild, &Context{PackageName: "htop"}))
}

func TestRunEmptyDirDisablesHooks(t *testing.T) {
	m := NewManager("")
	assert.NoError(t, m.Run(PostRemove, &Context{PackageName: "htop"}))
}

func TestRunNilManagerIsNoop(t *testing.T) {
	var m *Manager
	assert.NoError(t, m.Run(PreBuild, &Context{PackageName: "htop"}))
}

func TestExecuteHookScriptError(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, PreBuild, `undefined_function()`)

	m := NewManager(dir)
	err := m.Run(PreBuild, &Context{PackageName: "htop"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestRunPhasesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, PreBuild, `fmt := import("fmt")`)

	m := NewManager(dir)
	// Only pre-build is configured; the other phases stay silent.
	require.NoError(t, m.Run(PreBuild, &Context{}))
	require.NoError(t, m.Run(PostInstall, &Context{}))
	require.NoError(t, m.Run(PostRemove, &Context{}))
}
