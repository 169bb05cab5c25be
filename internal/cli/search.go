package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search the repository for packages",
		Long: `Search the local mirror for packages whose category/name identifier
contains TERM. The match is case-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSearch(args[0])
		},
	}

	return cmd
}

func runSearch(term string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg)

	identifiers, err := a.index.All()
	if err != nil {
		return err
	}

	term = strings.ToLower(term)
	found := 0
	for _, id := range identifiers {
		if !strings.Contains(strings.ToLower(id), term) {
			continue
		}
		fmt.Println(id)
		found++
	}
	if found == 0 {
		fmt.Printf("No packages matching %q\n", term)
	}
	return nil
}
