package build

import (
	"context"
	"os"
	"os/exec"

	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/executor"
)

// PkgtoolsInstaller installs and removes built archives through the Slackware
// package tools. An alternate filesystem root relocates the package database
// via the tools' ROOT environment setting.
type PkgtoolsInstaller struct {
	exec    *executor.Executor
	root    string
	cleanup bool
}

// NewPkgtoolsInstaller returns an installer operating under root ("/" for the
// live system). When cleanup is true, consumed archives are deleted after a
// successful install.
func NewPkgtoolsInstaller(exec *executor.Executor, root string, cleanup bool) *PkgtoolsInstaller {
	return &PkgtoolsInstaller{exec: exec, root: root, cleanup: cleanup}
}

// Install registers the archive at path in the system package database.
// upgradepkg with --install-new and --reinstall transparently supersedes a
// previously installed version of the same base name, retiring its files as
// part of installing the new one.
func (i *PkgtoolsInstaller) Install(ctx context.Context, archivePath string) error {
	cmd := exec.Command("upgradepkg", "--reinstall", "--install-new", archivePath)
	cmd.Env = i.env()
	if _, err := i.exec.Run(ctx, cmd); err != nil {
		return err
	}
	if i.cleanup {
		if err := os.Remove(archivePath); err != nil {
			return errors.Wrapf(err, "failed to remove consumed archive %s", archivePath)
		}
		logger.Debugf("Removed consumed archive %s", archivePath)
	}
	return nil
}

// Remove unregisters a previously installed archive, identified by its full
// on-disk package name (e.g. "htop-3.2.2-x86_64-1_SBo").
func (i *PkgtoolsInstaller) Remove(ctx context.Context, fullPkgName string) error {
	cmd := exec.Command("removepkg", fullPkgName)
	cmd.Env = i.env()
	_, err := i.exec.Run(ctx, cmd)
	return err
}

func (i *PkgtoolsInstaller) env() []string {
	env := os.Environ()
	if i.root != "" && i.root != "/" {
		env = append(env, "ROOT="+i.root)
	}
	return env
}
