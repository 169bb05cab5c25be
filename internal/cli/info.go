package cli

import (
	"fmt"
	"strings"

	"github.com/sbopak/sbopak/pkg/artifact"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info command.
func NewInfoCmd() *cobra.Command {
	var artifactPath string

	cmd := &cobra.Command{
		Use:   "info PACKAGE",
		Short: "Show package details",
		Long: `Show the descriptor details of a repository package: version, homepage,
maintainer, sources and dependencies.

With --artifact, inspect a built archive instead: list its contents and
print its package description.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if artifactPath != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if artifactPath != "" {
				return runInfoArtifact(cmd, artifactPath)
			}
			return runInfo(args[0])
		},
	}

	cmd.Flags().StringVar(&artifactPath, "artifact", "", "Inspect a built archive instead of a repository package")

	return cmd
}

func runInfo(name string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg)

	pkg, err := a.loader.Load(name, false)
	if err != nil {
		return err
	}

	fmt.Printf("Name:       %s\n", pkg.Name)
	fmt.Printf("Category:   %s\n", pkg.Category)
	fmt.Printf("Version:    %s\n", pkg.Version)
	fmt.Printf("Homepage:   %s\n", pkg.Homepage)
	fmt.Printf("Maintainer: %s <%s>\n", pkg.MaintainerName, pkg.MaintainerEmail)
	if pkg.UnsupportedOnArch {
		fmt.Println("Arch:       unsupported on this machine")
	}
	for _, url := range pkg.SourceURLs {
		fmt.Printf("Source:     %s\n", url)
	}
	if len(pkg.Requires) > 0 {
		fmt.Printf("Requires:   %s\n", strings.Join(pkg.Requires, " "))
	}
	if pkg.HasExtraUndeclaredDeps {
		fmt.Println("Note:       has additional dependencies, see its README")
	}
	return nil
}

func runInfoArtifact(cmd *cobra.Command, path string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	inspector := artifact.NewInspector()
	desc, err := inspector.SlackDesc(cmd.Context(), path)
	if err != nil {
		return err
	}
	if desc != "" {
		fmt.Println(desc)
	}

	files, err := inspector.List(cmd.Context(), path)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
