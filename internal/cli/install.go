package cli

import (
	"github.com/sbopak/sbopak/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "install [PACKAGE...]",
		Short: "Build and install packages with their dependencies",
		Long: `Resolve each package's dependency chain, then fetch, build and install
the whole queue in order. Packages may be given as bare names or as
category/name identifiers. Already-installed packages at the same version
are skipped unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a := newApp(cfg)
			opts := orchestrator.InstallOptions{DryRun: dryRun, Force: force}
			return a.orch.Install(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and print the build queue without building")
	cmd.Flags().BoolVar(&force, "force", false, "Rebuild and reinstall packages already at the current version")

	return cmd
}
