package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"
	"github.com/sbopak/sbopak/internal/logger"
	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/sbopak/sbopak/pkg/build"
	"github.com/sbopak/sbopak/pkg/config"
	"github.com/sbopak/sbopak/pkg/download"
	"github.com/sbopak/sbopak/pkg/executor"
	"github.com/sbopak/sbopak/pkg/hook"
	"github.com/sbopak/sbopak/pkg/orchestrator"
	"github.com/sbopak/sbopak/pkg/pkginfo"
	"github.com/sbopak/sbopak/pkg/platform"
	"github.com/sbopak/sbopak/pkg/repository"
	"github.com/sbopak/sbopak/pkg/resolver"
)

// DefaultHookDir holds the optional per-phase hook scripts.
const DefaultHookDir = "/etc/sbopak/hooks"

const downloadTimeout = 30 * time.Minute

// These variables are set by the main package.
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration honoring the --config flag and
// initializes logging from the --verbose flag.
func loadConfig() (*config.Config, error) {
	path := config.DefaultConfigPath
	if ConfigPath != nil && *ConfigPath != "" {
		path = *ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := "info"
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level)
	if NoColor != nil && *NoColor {
		color.Disable()
	}
	return cfg, nil
}

// systemRoot returns the effective filesystem root. Setting ROOT in the
// environment relocates both the package database and the pkgtools calls,
// matching the upstream pkgtools convention.
func systemRoot() string {
	if root := os.Getenv("ROOT"); root != "" {
		return root
	}
	return "/"
}

// app bundles the wired components behind the commands.
type app struct {
	cfg    *config.Config
	index  *repository.Index
	loader *pkginfo.Loader
	orch   *orchestrator.Orchestrator
}

// newApp wires the full pipeline from a loaded configuration.
func newApp(cfg *config.Config) *app {
	exec := executor.New()
	index := repository.NewIndex(cfg.RepoRoot)
	loader := pkginfo.NewLoader(index, platform.HostArch())
	root := systemRoot()

	dl := download.NewManager(downloadTimeout, "")
	dl.Progress = true

	orch := &orchestrator.Orchestrator{
		Loader:    loader,
		Resolver:  resolver.New(loader),
		Stager:    build.NewStager(dl, cfg),
		Builder:   build.NewScriptBuilder(exec, filepath.Join(cfg.TmpDir, "output"), platform.HostArch()),
		Installer: build.NewPkgtoolsInstaller(exec, root, cfg.Cleanup),
		Syncer:    repository.NewGitSyncer(exec, cfg.RepoRoot, cfg.RepoGitURL, cfg.RepoGitBranch),
		DB:        artifact.NewDatabase(root, index),
		UserHooks: hook.NewManager(DefaultHookDir),
		Privilege: build.CheckPrivilege,
		Cleanup:   cfg.Cleanup,
		Events:    orchestrator.Hooks{OnEvent: printEvent},
	}
	return &app{cfg: cfg, index: index, loader: loader, orch: orch}
}

// printEvent renders orchestrator progress for the terminal.
func printEvent(e orchestrator.Event) {
	switch e.Phase {
	case "done":
		color.Green.Println("==> done")
	case "skip":
		color.Yellow.Printf("==> %s: %s\n", e.ID, e.Msg)
	default:
		if e.Msg != "" {
			color.Cyan.Printf("==> %s %s (%s)\n", e.Phase, e.ID, e.Msg)
		} else {
			color.Cyan.Printf("==> %s %s\n", e.Phase, e.ID)
		}
	}
}
