package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTmpDir, cfg.TmpDir)
	assert.True(t, cfg.Cleanup)
	assert.Equal(t, DefaultRepoRoot, cfg.RepoRoot)
	assert.Equal(t, DefaultRepoGitURL, cfg.RepoGitURL)
	assert.Equal(t, "15.0", cfg.RepoGitBranch)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
# sbopak configuration
TMPDIR=/var/tmp/sbopak
CLEANUP=no
REPO_ROOT="/srv/sbo/repo"   # quoted value with trailing comment
REPO_GIT_URL=https://github.com/example/slackbuilds.git
REPO_GIT_BRANCH=current
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/sbopak", cfg.TmpDir)
	assert.False(t, cfg.Cleanup)
	assert.Equal(t, "/srv/sbo/repo", cfg.RepoRoot)
	assert.Equal(t, "https://github.com/example/slackbuilds.git", cfg.RepoGitURL)
	assert.Equal(t, "current", cfg.RepoGitBranch)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	configPath := writeConfig(t, "CLEANUP=false\n")

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.False(t, cfg.Cleanup)
	assert.Equal(t, DefaultTmpDir, cfg.TmpDir)
	assert.Equal(t, DefaultRepoRoot, cfg.RepoRoot)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{
			name:    "unknown key",
			content: "TMPDIR=/tmp/x\nNOPE=1\n",
			errText: "line 2",
		},
		{
			name:    "missing separator",
			content: "TMPDIR /tmp/x\n",
			errText: "not a key=value pair",
		},
		{
			name:    "empty value",
			content: "TMPDIR=\n",
			errText: "empty value",
		},
		{
			name:    "empty key",
			content: "=/tmp/x\n",
			errText: "empty key",
		},
		{
			name:    "bad boolean",
			content: "CLEANUP=maybe\n",
			errText: "boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, tt.content)
			_, err := Load(configPath)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrConfigParse)
			assert.Contains(t, err.Error(), tt.errText)
			assert.Contains(t, err.Error(), configPath)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "yes", "on", "1"} {
		b, err := parseBool(v)
		require.NoError(t, err)
		assert.True(t, b, v)
	}
	for _, v := range []string{"false", "No", "off", "0"} {
		b, err := parseBool(v)
		require.NoError(t, err)
		assert.False(t, b, v)
	}
	_, err := parseBool("2")
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sbopak.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), fsutil.FileModeDefault))
	return path
}
