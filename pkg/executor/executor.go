// Package executor runs the external tools sbopak depends on (git, the build
// scripts, the Slackware package tools). Commands are synchronous; their
// output is streamed to the invoking process's standard streams and captured
// at the same time so failures can be inspected afterwards.
package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/sbopak/sbopak/pkg/errors"
)

// Executor runs commands with tee'd output and context-based cancellation.
// The zero value streams to os.Stdout/os.Stderr.
type Executor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Executor wired to the process's standard streams.
func New() *Executor {
	return &Executor{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes cmd, streaming its output while capturing it. The child is
// isolated in its own process group so that cancelling ctx kills the whole
// group, not just the immediate child. The captured combined output is
// returned even when the command fails.
func (e *Executor) Run(ctx context.Context, cmd *exec.Cmd) (string, error) {
	stdout := e.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var capture bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &capture)
	cmd.Stderr = io.MultiWriter(stderr, &capture)
	if len(cmd.Env) == 0 {
		cmd.Env = os.Environ()
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return capture.String(), errors.Wrapf(errors.ErrCommandFailed, "failed to start %q: %v", CommandText(cmd), err)
	}

	pgid := cmd.Process.Pid
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = syscall.Kill(-pgid, syscall.SIGKILL)
		case <-done:
		}
	}()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return capture.String(), errors.Wrapf(errors.ErrCommandFailed, "%q aborted: %v", CommandText(cmd), ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return capture.String(), errors.Wrapf(errors.ErrCommandFailed, "%q exited with status %d", CommandText(cmd), exitErr.ExitCode())
		}
		return capture.String(), errors.Wrapf(errors.ErrCommandFailed, "%q: %v", CommandText(cmd), err)
	}
	return capture.String(), nil
}

// CommandText renders a command the way it is reported in errors.
func CommandText(cmd *exec.Cmd) string {
	return strings.Join(cmd.Args, " ")
}
