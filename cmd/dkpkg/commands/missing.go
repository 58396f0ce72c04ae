package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
)

var (
	missingCheck    bool
	missingAbsolute bool
)

func init() {
	missingCmd.Flags().BoolVar(&missingCheck, "check", false, "exit with status 1 when any directory is missing")
	missingCmd.Flags().BoolVarP(&missingAbsolute, "absolute", "a", false, "print absolute paths")
	rootCmd.AddCommand(missingCmd)
}

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List package directories that do not exist",
	Long: `List the docs, tests, source, Django and build directories that do
not exist yet, one per line.

With --check the command fails when anything is missing, for use in CI.`,
	Example: `  dkpkg missing
  dkpkg missing --check

See Also: dkpkg mkdirs, dkpkg status`,
	Args: cobra.NoArgs,
	RunE: runMissing,
}

func runMissing(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	missing := s.layout.Missing()
	w := cmd.OutOrStdout()
	if !quiet {
		lines := relPaths(missing, s.layout.Root)
		if missingAbsolute {
			lines = absPaths(missing)
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	if missingCheck && len(missing) > 0 {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrMissingDirectories, "%d", len(missing)),
			"Run: dkpkg mkdirs")
	}
	return nil
}
