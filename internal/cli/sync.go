package cli

import (
	"fmt"
	"strings"

	"github.com/sbopak/sbopak/pkg/config"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	var (
		mirror      string
		mirrorsFile string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Update the local SlackBuilds mirror",
		Long: `Clone or update the local SlackBuilds.org descriptor mirror.
The mirror is pinned to the configured release branch; use --mirror to pick
one of the known mirror presets instead of the configured remote.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd, mirror, mirrorsFile)
		},
	}

	cmd.Flags().StringVar(&mirror, "mirror", "", "Use a named mirror preset instead of the configured remote")
	cmd.Flags().StringVar(&mirrorsFile, "mirrors-file", "", "Read mirror presets from this YAML file (defaults to the builtin set)")

	return cmd
}

func runSync(cmd *cobra.Command, mirror, mirrorsFile string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if mirror != "" {
		mirrors, err := config.LoadMirrors(mirrorsFile)
		if err != nil {
			return err
		}
		m, ok := mirrors[mirror]
		if !ok {
			return fmt.Errorf("unknown mirror %q (known: %s)", mirror, strings.Join(config.MirrorNames(mirrors), ", "))
		}
		cfg.ApplyMirror(m)
	}

	a := newApp(cfg)
	return a.orch.Sync(cmd.Context())
}
