// Package resolver computes dependency-ordered build queues over the
// REQUIRES edges of package descriptors.
package resolver

import (
	"strings"

	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/pkginfo"
)

// PackageLoader is the subset of the descriptor loader the resolver needs.
type PackageLoader interface {
	Load(nameOrIdentifier string, bypassCache bool) (*pkginfo.Package, error)
}

// Resolver builds dependency queues. Dependency records are loaded with
// caching enabled, so a dependency shared across branches of the graph is
// parsed from disk only once.
type Resolver struct {
	loader PackageLoader
}

// New returns a Resolver backed by the given loader.
func New(loader PackageLoader) *Resolver {
	return &Resolver{loader: loader}
}

type traversal struct {
	visited    map[string]bool
	inProgress map[string]bool
	stack      []string
	queue      []*pkginfo.Package
}

// BuildQueue returns the dependency-ordered, deduplicated build queue for
// root: every reachable package appears exactly once, strictly after all of
// its transitive dependencies, and root itself comes last. The root is never
// re-inserted even when it is reachable as a transitive dependency of one of
// its own dependencies. A dependency that is an ancestor of itself in the
// current traversal is reported as a circular-dependency error.
func (r *Resolver) BuildQueue(root *pkginfo.Package) ([]*pkginfo.Package, error) {
	t := &traversal{
		visited:    map[string]bool{root.Identifier: true},
		inProgress: make(map[string]bool),
	}
	if err := r.visit(root, t); err != nil {
		return nil, err
	}
	t.queue = append(t.queue, root)
	return t.queue, nil
}

func (r *Resolver) visit(pkg *pkginfo.Package, t *traversal) error {
	t.inProgress[pkg.Identifier] = true
	t.stack = append(t.stack, pkg.Identifier)

	for _, dep := range pkg.Requires {
		depPkg, err := r.loader.Load(dep, false)
		if err != nil {
			return errors.Wrapf(err, "unresolved dependency %q of %s", dep, pkg.Identifier)
		}
		if t.visited[depPkg.Identifier] {
			continue
		}
		if t.inProgress[depPkg.Identifier] {
			cycle := append(t.stack, depPkg.Identifier)
			return errors.Wrapf(errors.ErrCircularDependency, "%s", strings.Join(cycle, " -> "))
		}
		if err := r.visit(depPkg, t); err != nil {
			return err
		}
		t.visited[depPkg.Identifier] = true
		t.queue = append(t.queue, depPkg)
	}

	delete(t.inProgress, pkg.Identifier)
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}
