package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the package layout",
	Long: `Show the package root and name, whether the package is a Django
project, where its models live and how many directories are missing.`,
	Example: `  dkpkg status

See Also: dkpkg missing, dkpkg show`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return writeStatus(cmd.OutOrStdout(), s)
}

// writeStatus renders the summary for s.
func writeStatus(w io.Writer, s *session) error {
	l := s.layout
	bold := color.New(color.Bold).SprintFunc()

	configFile := s.configFile
	if configFile == "" {
		configFile = color.HiBlackString("(none)")
	}

	framework := color.YellowString("no")
	if l.IsFramework() {
		framework = color.GreenString("yes")
	}

	models := color.HiBlackString("(none)")
	if m := l.Models(); !m.IsZero() {
		models = m.Rel(l.Root)
	}

	missing := color.GreenString("none")
	if n := len(l.Missing()); n > 0 {
		missing = color.RedString("%d director%s", n, plural(n, "y", "ies"))
	}

	fmt.Fprintf(w, "%s %s (name: %s)\n", bold("Package:   "), l.PackageName, l.Name)
	fmt.Fprintf(w, "%s %s\n", bold("Root:      "), l.Root)
	fmt.Fprintf(w, "%s %s\n", bold("Convention:"), l.Convention())
	fmt.Fprintf(w, "%s %s\n", bold("Config:    "), configFile)
	fmt.Fprintf(w, "%s %s\n", bold("Django:    "), framework)
	fmt.Fprintf(w, "%s %s\n", bold("Models:    "), models)
	fmt.Fprintf(w, "%s %s\n", bold("Missing:   "), missing)
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
