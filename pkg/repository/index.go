// Package repository provides access to the on-disk SlackBuilds descriptor
// mirror: enumerating categories and packages, resolving short names to
// canonical "category/name" identifiers, and keeping the mirror in sync with
// its upstream git repository.
package repository

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
)

// Index enumerates and resolves packages in the local descriptor mirror.
type Index struct {
	root string
}

// NewIndex returns an Index over the mirror checkout at root.
func NewIndex(root string) *Index {
	return &Index{root: root}
}

// Root returns the mirror root directory.
func (ix *Index) Root() string {
	return ix.root
}

// Dir returns the descriptor directory for a canonical identifier.
func (ix *Index) Dir(identifier string) string {
	return filepath.Join(ix.root, filepath.FromSlash(identifier))
}

// Categories returns the sorted list of top-level category names, excluding
// version-control metadata directories.
func (ix *Index) Categories() ([]string, error) {
	entries, err := os.ReadDir(ix.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list repository root %s", ix.root)
	}
	var categories []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		categories = append(categories, entry.Name())
	}
	sort.Strings(categories)
	return categories, nil
}

// All returns every "category/name" identifier in the mirror, walking one
// level into each category, in category-sorted order.
func (ix *Index) All() ([]string, error) {
	categories, err := ix.Categories()
	if err != nil {
		return nil, err
	}
	var identifiers []string
	for _, category := range categories {
		entries, err := os.ReadDir(filepath.Join(ix.root, category))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list category %s", category)
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			identifiers = append(identifiers, category+"/"+name)
		}
	}
	return identifiers, nil
}

// Resolve turns a short or qualified package name into its canonical
// "category/name" identifier. A qualified name must match exactly; a bare
// name is searched across every category in sorted order and the first match
// wins. The match is case-sensitive.
func (ix *Index) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrap(errors.ErrPackageNotFound, "empty package name")
	}

	if strings.Contains(name, "/") {
		parts := strings.Split(name, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", errors.Wrapf(errors.ErrPackageNotFound, "%s is not a category/name identifier", name)
		}
		if ix.isPackageDir(parts[0], parts[1]) {
			return name, nil
		}
		return "", errors.Wrapf(errors.ErrPackageNotFound, "%s", name)
	}

	categories, err := ix.Categories()
	if err != nil {
		return "", err
	}
	for _, category := range categories {
		if ix.isPackageDir(category, name) {
			return category + "/" + name, nil
		}
	}
	return "", errors.Wrapf(errors.ErrPackageNotFound, "%s", name)
}

func (ix *Index) isPackageDir(category, name string) bool {
	info, err := os.Stat(filepath.Join(ix.root, category, name))
	return err == nil && info.IsDir()
}
