package cli

import (
	"fmt"

	"github.com/sbopak/sbopak/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build [PACKAGE...]",
		Short: "Build packages without installing them",
		Long: `Fetch sources and run the build script for each named package, leaving
the produced archives in the output directory. Dependencies are not built;
they are expected to be installed already.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a := newApp(cfg)
			artifacts, err := a.orch.Build(cmd.Context(), args, orchestrator.BuildOptions{DryRun: dryRun})
			if err != nil {
				return err
			}
			for _, path := range artifacts {
				fmt.Println(path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be built without building")

	return cmd
}
