package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Long: `List the installed packages that carry the _SBo tag, with their
repository identifier and version. Use --name to filter by substring.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter packages by name (partial match)")

	return cmd
}

func runList(nameFilter string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg)

	entries, err := a.orch.DB.Entries()
	if err != nil {
		return err
	}

	printed := 0
	for _, entry := range entries {
		if nameFilter != "" && !strings.Contains(entry.Ref.Name, nameFilter) {
			continue
		}
		fmt.Printf("%-40s %s\n", entry.Ref.Identifier, entry.Ref.Version)
		printed++
	}
	if printed == 0 {
		fmt.Println("No packages installed")
	}
	return nil
}
