// Package hook runs optional user-supplied Tengo scripts around pipeline
// phases. A hook is a file named <phase>.tengo in the hook directory; a
// missing file simply means no hook runs for that phase.
package hook

import (
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/errors"
)

// Hook phases.
const (
	PreBuild    = "pre-build"
	PostInstall = "post-install"
	PostRemove  = "post-remove"
)

// Context provides package information to hook scripts.
type Context struct {
	PackageName    string
	PackageVersion string
	Identifier     string
	Operation      string // "build", "install", "remove"
	StagingDir     string
	ArtifactPath   string
}

// Executor runs a single hook script.
type Executor interface {
	ExecuteHook(hookPath string, hctx *Context) error
}

// TengoExecutor is the default Executor, running hooks as Tengo scripts.
type TengoExecutor struct{}

// NewTengoExecutor creates a new Tengo hook executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{}
}

// ExecuteHook executes the Tengo script at hookPath with the context exposed
// as the "pkg" builtin module.
func (te *TengoExecutor) ExecuteHook(hookPath string, hctx *Context) error {
	scriptContent, err := os.ReadFile(hookPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read hook script %s", hookPath)
	}

	moduleMap := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	moduleMap.AddBuiltinModule("pkg", map[string]tengo.Object{
		"name":       &tengo.String{Value: hctx.PackageName},
		"version":    &tengo.String{Value: hctx.PackageVersion},
		"identifier": &tengo.String{Value: hctx.Identifier},
		"operation":  &tengo.String{Value: hctx.Operation},
		"staging":    &tengo.String{Value: hctx.StagingDir},
		"artifact":   &tengo.String{Value: hctx.ArtifactPath},
	})

	script := tengo.NewScript(scriptContent)
	script.SetImports(moduleMap)

	if _, err := script.Run(); err != nil {
		return errors.Wrapf(errors.ErrHookExecution, "%s: %v", hookPath, err)
	}

	logger.Debug("Hook script executed", logger.Fields{
		"hook_path": hookPath,
		"operation": hctx.Operation,
		"package":   hctx.PackageName,
	})
	return nil
}

// Manager locates and runs the hooks configured in one directory.
type Manager struct {
	dir      string
	executor Executor
}

// NewManager returns a Manager over dir. An empty dir disables all hooks.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir, executor: NewTengoExecutor()}
}

// NewManagerWithExecutor returns a Manager with a custom script executor.
func NewManagerWithExecutor(dir string, executor Executor) *Manager {
	return &Manager{dir: dir, executor: executor}
}

// Run executes the hook for phase if one is configured.
func (m *Manager) Run(phase string, hctx *Context) error {
	if m == nil || m.dir == "" {
		return nil
	}
	hookPath := filepath.Join(m.dir, phase+".tengo")
	if _, err := os.Stat(hookPath); os.IsNotExist(err) {
		return nil
	}
	return m.executor.ExecuteHook(hookPath, hctx)
}
