package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatabase(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	dbDir := filepath.Join(root, DatabaseDir)
	require.NoError(t, fsutil.EnsureDir(dbDir))
	for _, entry := range entries {
		require.NoError(t, os.WriteFile(filepath.Join(dbDir, entry), nil, fsutil.FileModeDefault))
	}
	return root
}

func TestInstalledEntries(t *testing.T) {
	index := fakeIndex{
		"htop":   "system/htop",
		"libfoo": "libraries/libfoo",
	}
	root := writeDatabase(t,
		"htop-3.2.2-x86_64-1_SBo",
		"libfoo-1.0-x86_64-2_SBo",
		"kernel-generic-5.15.19-x86_64-2", // stock Slackware, untagged
		"aaa-utils-9.9-x86_64-1alien",     // third-party tag
	)

	entries, err := InstalledEntries(root, index)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "libraries/libfoo", entries[0].Ref.Identifier)
	assert.Equal(t, "libfoo-1.0-x86_64-2_SBo", entries[0].FullName)
	assert.Equal(t, "system/htop", entries[1].Ref.Identifier)
	assert.Equal(t, "3.2.2", entries[1].Ref.Version)
}

func TestInstalledEntriesMissingDatabase(t *testing.T) {
	entries, err := InstalledEntries(t.TempDir(), fakeIndex{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstalled(t *testing.T) {
	index := fakeIndex{"htop": "system/htop"}
	root := writeDatabase(t, "htop-3.2.2-x86_64-1_SBo")

	installed, err := Installed(root, index)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"system/htop": "3.2.2"}, installed)
}

func TestDatabase(t *testing.T) {
	index := fakeIndex{"htop": "system/htop"}
	root := writeDatabase(t, "htop-3.2.2-x86_64-1_SBo")

	db := NewDatabase(root, index)

	entries, err := db.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	installed, err := db.Installed()
	require.NoError(t, err)
	assert.Equal(t, "3.2.2", installed["system/htop"])
}
