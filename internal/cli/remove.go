package cli

import (
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [PACKAGE...]",
		Short: "Remove installed packages",
		Long: `Unregister the named packages from the system package database via
removepkg. Only packages that were installed by this tool can be removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a := newApp(cfg)
			return a.orch.Remove(cmd.Context(), args)
		},
	}

	return cmd
}
