package artifact

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sbopak/sbopak/pkg/errors"
)

// DatabaseDir is the system package database location, relative to the
// effective filesystem root.
const DatabaseDir = "var/lib/pkgtools/packages"

// Entry is one installed package registered in the system database.
type Entry struct {
	// FullName is the on-disk database entry name, e.g.
	// "htop-3.2.2-x86_64-1_SBo". It is what removepkg expects.
	FullName string
	Ref      Ref
}

// InstalledEntries scans the system package database under root and returns
// the entries managed by this tool, sorted by identifier. Entries that do not
// carry the _SBo tag, or that decode to no known package, are silently
// excluded.
func InstalledEntries(root string, index NameResolver) ([]Entry, error) {
	dbDir := filepath.Join(root, DatabaseDir)
	dirEntries, err := os.ReadDir(dbDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to list package database %s", dbDir)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ref, err := ParseFilename(de.Name(), index)
		if err != nil {
			if errors.IsNotManaged(err) {
				continue
			}
			return nil, err
		}
		entries = append(entries, Entry{FullName: de.Name(), Ref: *ref})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Ref.Identifier < entries[j].Ref.Identifier
	})
	return entries, nil
}

// Installed returns the identifier-to-version mapping of the managed packages
// registered in the system database under root.
func Installed(root string, index NameResolver) (map[string]string, error) {
	entries, err := InstalledEntries(root, index)
	if err != nil {
		return nil, err
	}
	installed := make(map[string]string, len(entries))
	for _, entry := range entries {
		installed[entry.Ref.Identifier] = entry.Ref.Version
	}
	return installed, nil
}

// Database is the installed-package inventory under one filesystem root.
// The inventory is transient: every query rescans the system database.
type Database struct {
	root  string
	index NameResolver
}

// NewDatabase returns a Database rooted at root ("/" for the live system).
func NewDatabase(root string, index NameResolver) *Database {
	if root == "" {
		root = "/"
	}
	return &Database{root: root, index: index}
}

// Entries returns the managed entries registered in the database.
func (d *Database) Entries() ([]Entry, error) {
	return InstalledEntries(d.root, d.index)
}

// Installed returns the identifier-to-version mapping of managed packages.
func (d *Database) Installed() (map[string]string, error) {
	return Installed(d.root, d.index)
}
