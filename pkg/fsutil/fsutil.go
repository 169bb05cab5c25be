// Package fsutil provides utility functions and constants for file system operations.
package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sbopak/sbopak/pkg/errors"
)

// File and directory permission constants.
const (
	// Default file modes.
	FileModeDefault = 0o644 // -rw-r--r--
	FileModeExec    = 0o755 // -rwxr-xr-x

	// Default directory modes.
	DirModeDefault = 0o755 // drwxr-xr-x
	DirModePrivate = 0o700 // drwx------
)

// EnsureDir creates a directory and all necessary parent directories with
// default permissions if they don't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirModeDefault); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}
	return nil
}

// RecreateDir removes path (if present) and creates it again empty.
func RecreateDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "failed to remove directory %s", path)
	}
	return EnsureDir(path)
}

// CopyFile copies a single regular file from src to dst, preserving the file mode.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	return nil
}

// CopyTree recursively copies every file and directory under src into dst,
// preserving nested subdirectories and file modes. Symlinks are recreated
// pointing at their original targets.
func CopyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, "failed to list %s", path)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.Wrapf(err, "failed to relativize %s", path)
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			if err := os.MkdirAll(target, info.Mode().Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", target)
			}
			return nil
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read symlink %s", path)
			}
			_ = os.Remove(target)
			if err := os.Symlink(link, target); err != nil {
				return errors.Wrapf(err, "failed to create symlink %s", target)
			}
			return nil
		default:
			return CopyFile(path, target)
		}
	})
}

// Move moves a file from src to dst. It first attempts an atomic rename and
// falls back to copy + delete when the two paths are on different filesystems.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return errors.Wrapf(err, "failed to remove %s after copy", src)
	}
	return nil
}
