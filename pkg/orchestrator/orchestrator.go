// Package orchestrator ties the repository, resolver and pipeline components
// together and drives the dependency queue strictly sequentially: a later
// package's build may require an earlier one to already be installed.
package orchestrator

import (
	"context"
	"os"
	"strings"

	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/hook"
	"github.com/sbopak/sbopak/pkg/pkginfo"
)

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|staging|building|installing|removing|skip|done
	ID    string // package identifier
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Orchestrator sequences sync, build, install and remove operations.
type Orchestrator struct {
	Loader    PackageLoader
	Resolver  QueueResolver
	Stager    Stager
	Builder   Builder
	Installer Installer
	Syncer    RepoSync
	DB        Inventory

	// UserHooks runs the optional per-phase hook scripts. May be nil.
	UserHooks *hook.Manager

	// Privilege is checked before any mutating operation. May be nil when
	// no check is wanted (tests, alternate-root experiments).
	Privilege func() error

	// Cleanup mirrors the CLEANUP config flag: staging directories are
	// removed on every exit path, including aborts, when it is set.
	Cleanup bool

	Events Hooks
}

// InstallOptions control Install execution.
type InstallOptions struct {
	// DryRun resolves and reports the queue without building anything.
	DryRun bool
	// Force rebuilds and reinstalls packages already at the queue version.
	Force bool
}

// BuildOptions control Build execution.
type BuildOptions struct {
	DryRun bool
}

func (o *Orchestrator) emit(e Event) {
	if o.Events.OnEvent != nil {
		o.Events.OnEvent(e)
	}
}

func (o *Orchestrator) checkPrivilege() error {
	if o.Privilege == nil {
		return nil
	}
	return o.Privilege()
}

// Sync brings the descriptor mirror up to date.
func (o *Orchestrator) Sync(ctx context.Context) error {
	if o.Syncer == nil {
		return errors.Wrap(errors.ErrCommandFailed, "repository syncer is not configured")
	}
	return o.Syncer.Sync(ctx)
}

// Install resolves each requested package's dependency queue and processes it
// in order: stage, build, install. Packages already installed at the queue
// version are skipped unless opts.Force is set. The first failure aborts the
// whole operation.
func (o *Orchestrator) Install(ctx context.Context, names []string, opts InstallOptions) error {
	if err := o.checkPrivilege(); err != nil {
		return err
	}
	installed, err := o.DB.Installed()
	if err != nil {
		return err
	}

	for _, name := range names {
		root, err := o.Loader.Load(name, false)
		if err != nil {
			return err
		}
		o.emit(Event{Phase: "resolving", ID: root.Identifier})
		queue, err := o.Resolver.BuildQueue(root)
		if err != nil {
			return err
		}

		if opts.DryRun {
			for _, pkg := range queue {
				o.emit(Event{Phase: "resolving", ID: pkg.Identifier, Msg: pkg.Version})
			}
			continue
		}

		for _, pkg := range queue {
			if ver, ok := installed[pkg.Identifier]; ok && ver == pkg.Version && !opts.Force {
				o.emit(Event{Phase: "skip", ID: pkg.Identifier, Msg: "already installed"})
				continue
			}
			if err := o.processPackage(ctx, pkg, true, nil); err != nil {
				return err
			}
			installed[pkg.Identifier] = pkg.Version
		}
	}
	o.emit(Event{Phase: "done"})
	return nil
}

// Build stages and builds the named packages without touching the system
// package database. Dependencies are not built; they are expected to be
// installed already. Returns the produced archive paths.
func (o *Orchestrator) Build(ctx context.Context, names []string, opts BuildOptions) ([]string, error) {
	if err := o.checkPrivilege(); err != nil {
		return nil, err
	}

	var artifacts []string
	for _, name := range names {
		pkg, err := o.Loader.Load(name, false)
		if err != nil {
			return nil, err
		}
		if opts.DryRun {
			o.emit(Event{Phase: "resolving", ID: pkg.Identifier, Msg: pkg.Version})
			continue
		}
		if err := o.processPackage(ctx, pkg, false, &artifacts); err != nil {
			return nil, err
		}
	}
	o.emit(Event{Phase: "done"})
	return artifacts, nil
}

// processPackage runs the stage-build(-install) sequence for one package.
// The staging directory is removed on every exit path when cleanup is on.
func (o *Orchestrator) processPackage(ctx context.Context, pkg *pkginfo.Package, install bool, artifacts *[]string) error {
	if pkg.UnsupportedOnArch {
		return errors.Wrapf(errors.ErrUnsupportedArch, "%s", pkg.Identifier)
	}

	o.emit(Event{Phase: "staging", ID: pkg.Identifier})
	stagingDir, err := o.Stager.Stage(ctx, pkg)
	if stagingDir != "" && o.Cleanup {
		defer func() { _ = os.RemoveAll(stagingDir) }()
	}
	if err != nil {
		return err
	}

	hctx := &hook.Context{
		PackageName:    pkg.Name,
		PackageVersion: pkg.Version,
		Identifier:     pkg.Identifier,
		Operation:      "build",
		StagingDir:     stagingDir,
	}
	if err := o.UserHooks.Run(hook.PreBuild, hctx); err != nil {
		return err
	}

	o.emit(Event{Phase: "building", ID: pkg.Identifier, Msg: pkg.Version})
	archivePath, err := o.Builder.Build(ctx, pkg, stagingDir)
	if err != nil {
		return err
	}
	if artifacts != nil {
		*artifacts = append(*artifacts, archivePath)
	}
	if !install {
		return nil
	}

	o.emit(Event{Phase: "installing", ID: pkg.Identifier, Msg: pkg.Version})
	if err := o.Installer.Install(ctx, archivePath); err != nil {
		return err
	}

	hctx.Operation = "install"
	hctx.ArtifactPath = archivePath
	return o.UserHooks.Run(hook.PostInstall, hctx)
}

// Remove unregisters the named packages from the system database. Names may
// be bare package names or category/name identifiers; each must correspond
// to an installed managed package.
func (o *Orchestrator) Remove(ctx context.Context, names []string) error {
	if err := o.checkPrivilege(); err != nil {
		return err
	}
	entries, err := o.DB.Entries()
	if err != nil {
		return err
	}

	for _, name := range names {
		entry, ok := findEntry(entries, name)
		if !ok {
			return errors.Wrapf(errors.ErrPackageNotFound, "%s is not installed", name)
		}
		o.emit(Event{Phase: "removing", ID: entry.Ref.Identifier, Msg: entry.Ref.Version})
		if err := o.Installer.Remove(ctx, entry.FullName); err != nil {
			return err
		}
		hctx := &hook.Context{
			PackageName:    entry.Ref.Name,
			PackageVersion: entry.Ref.Version,
			Identifier:     entry.Ref.Identifier,
			Operation:      "remove",
		}
		if err := o.UserHooks.Run(hook.PostRemove, hctx); err != nil {
			return err
		}
	}
	o.emit(Event{Phase: "done"})
	return nil
}

func findEntry(entries []artifact.Entry, name string) (artifact.Entry, bool) {
	for _, entry := range entries {
		if strings.Contains(name, "/") {
			if entry.Ref.Identifier == name {
				return entry, true
			}
			continue
		}
		if entry.Ref.Name == name {
			return entry, true
		}
	}
	return artifact.Entry{}, false
}
