package repository

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/errors"
	"github.com/sbopak/sbopak/pkg/executor"
	"github.com/sbopak/sbopak/pkg/fsutil"
)

// GitSyncer keeps the local descriptor mirror in sync with its upstream git
// repository, pinned to a single branch. All git invocations go through the
// Executor so their output is streamed and they die with the context.
type GitSyncer struct {
	exec   *executor.Executor
	root   string
	url    string
	branch string
}

// NewGitSyncer returns a syncer for the mirror at root tracking branch at url.
func NewGitSyncer(exec *executor.Executor, root, url, branch string) *GitSyncer {
	return &GitSyncer{exec: exec, root: root, url: url, branch: branch}
}

// Sync clones the mirror if it does not exist yet, otherwise fast-forwards it
// to the upstream state of the pinned branch.
func (s *GitSyncer) Sync(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(s.root, ".git")); os.IsNotExist(err) {
		return s.clone(ctx)
	}
	return s.update(ctx)
}

func (s *GitSyncer) clone(ctx context.Context) error {
	logger.Infof("Cloning %s (branch %s) into %s", s.url, s.branch, s.root)
	if err := fsutil.EnsureDir(filepath.Dir(s.root)); err != nil {
		return err
	}
	cmd := exec.Command("git", "clone", "--branch", s.branch, s.url, s.root)
	if _, err := s.exec.Run(ctx, cmd); err != nil {
		return errors.Wrap(err, "failed to clone repository")
	}
	return nil
}

func (s *GitSyncer) update(ctx context.Context) error {
	logger.Infof("Updating %s (branch %s)", s.root, s.branch)
	fetch := exec.Command("git", "-C", s.root, "fetch", "origin", s.branch)
	if _, err := s.exec.Run(ctx, fetch); err != nil {
		return errors.Wrap(err, "failed to fetch repository")
	}
	// The mirror is treated as read-only, so a hard reset to the upstream
	// branch is safe and also recovers from a changed REPO_GIT_BRANCH.
	reset := exec.Command("git", "-C", s.root, "reset", "--hard", "origin/"+s.branch)
	if _, err := s.exec.Run(ctx, reset); err != nil {
		return errors.Wrap(err, "failed to reset repository")
	}
	return nil
}
