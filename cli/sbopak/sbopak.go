package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbopak/sbopak/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sbopak: error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sbopak",
		Short: "A SlackBuilds.org package manager",
		Long: `sbopak builds and installs packages from the SlackBuilds.org repository:
- sync a local descriptor mirror pinned to a release branch
- resolve dependency chains and build packages in order
- install, list and remove packages through the system pkgtools`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: /etc/sbopak/sbopak.conf)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewSyncCmd(),
		cli.NewInstallCmd(),
		cli.NewBuildCmd(),
		cli.NewRemoveCmd(),
		cli.NewListCmd(),
		cli.NewSearchCmd(),
		cli.NewInfoCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
