package pkginfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkg.info")
	require.NoError(t, os.WriteFile(path, []byte(content), fsutil.FileModeDefault))
	return path
}

func TestParseDescriptor(t *testing.T) {
	path := writeDescriptor(t, `PRGNAM="htop"
VERSION="3.2.2"
HOMEPAGE="https://htop.dev/"
DOWNLOAD="https://github.com/htop-dev/htop/archive/3.2.2/htop-3.2.2.tar.gz"
MD5SUM="0000aaaa1111bbbb2222cccc3333dddd"
REQUIRES=""
MAINTAINER="Some One"
EMAIL="someone@example.com"
`)

	values, err := ParseDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t, "htop", values["PRGNAM"])
	assert.Equal(t, "3.2.2", values["VERSION"])
	assert.Equal(t, "", values["REQUIRES"])
	assert.Equal(t, "someone@example.com", values["EMAIL"])
}

func TestParseDescriptorContinuation(t *testing.T) {
	path := writeDescriptor(t, `DOWNLOAD="https://example.com/a.tar.gz \
https://example.com/b.tar.gz \
https://example.com/c.tar.gz"
MD5SUM="aaa \
bbb \
ccc"
`)

	values, err := ParseDescriptor(path)
	require.NoError(t, err)

	assert.Equal(t,
		"https://example.com/a.tar.gz https://example.com/b.tar.gz https://example.com/c.tar.gz",
		values["DOWNLOAD"])
	assert.Equal(t, "aaa bbb ccc", values["MD5SUM"])
}

func TestParseDescriptorSkipsCommentsAndBlanks(t *testing.T) {
	path := writeDescriptor(t, `# generated

PRGNAM="foo"

# trailing comment line
VERSION="1.0"
`)

	values, err := ParseDescriptor(path)
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func TestParseDescriptorMalformedLine(t *testing.T) {
	path := writeDescriptor(t, "PRGNAM=\"x\"\nthis is not a pair\n")

	_, err := ParseDescriptor(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDescriptorParse)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), path)
}

func TestParseDescriptorMissingFile(t *testing.T) {
	_, err := ParseDescriptor(filepath.Join(t.TempDir(), "nope.info"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.info")
}
