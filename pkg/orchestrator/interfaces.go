//go:generate mockgen -destination=./mocks/orchestrator.go -package=mocks . PackageLoader,QueueResolver,Stager,Builder,Installer,RepoSync,Inventory

package orchestrator

import (
	"context"

	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/sbopak/sbopak/pkg/pkginfo"
)

// PackageLoader is the subset of the descriptor loader the orchestrator uses.
type PackageLoader interface {
	Load(nameOrIdentifier string, bypassCache bool) (*pkginfo.Package, error)
}

// QueueResolver computes the dependency-ordered build queue for a package.
type QueueResolver interface {
	BuildQueue(root *pkginfo.Package) ([]*pkginfo.Package, error)
}

// Stager prepares a package's staging directory with verified sources.
type Stager interface {
	Stage(ctx context.Context, pkg *pkginfo.Package) (string, error)
}

// Builder produces an installable archive from a staged package.
type Builder interface {
	Build(ctx context.Context, pkg *pkginfo.Package, stagingDir string) (string, error)
}

// Installer registers and unregisters archives in the system package database.
type Installer interface {
	Install(ctx context.Context, archivePath string) error
	Remove(ctx context.Context, fullPkgName string) error
}

// RepoSync keeps the local descriptor mirror up to date.
type RepoSync interface {
	Sync(ctx context.Context) error
}

// Inventory queries the installed managed packages.
type Inventory interface {
	Entries() ([]artifact.Entry, error)
	Installed() (map[string]string, error)
}
