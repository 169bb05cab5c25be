package artifact

import (
	"context"
	"io"
	"io/fs"
	"sort"

	"github.com/mholt/archives"
	"github.com/sbopak/sbopak/pkg/errors"
)

// slackDescPath is where pkgtools archives carry the package description.
const slackDescPath = "install/slack-desc"

// Inspector reads built artifact archives without installing them.
type Inspector struct{}

// NewInspector creates a new Inspector instance.
func NewInspector() *Inspector {
	return &Inspector{}
}

// List returns the sorted file paths contained in the archive at path.
func (in *Inspector) List(ctx context.Context, archivePath string) ([]string, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	var files []string
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." || d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read archive %s", archivePath)
	}
	sort.Strings(files)
	return files, nil
}

// SlackDesc returns the slack-desc text carried inside the archive at path,
// or an empty string when the archive has none.
func (in *Inspector) SlackDesc(ctx context.Context, archivePath string) (string, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open archive %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	file, err := fsys.Open(slackDescPath)
	if err != nil {
		return "", nil
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s from %s", slackDescPath, archivePath)
	}
	return string(data), nil
}
