package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
)

var mkdirsDryRun bool

func init() {
	mkdirsCmd.Flags().BoolVarP(&mkdirsDryRun, "dry-run", "n", false, "print the directories without creating them")
	rootCmd.AddCommand(mkdirsCmd)
}

var mkdirsCmd = &cobra.Command{
	Use:   "mkdirs",
	Short: "Create missing package directories",
	Long: `Create every package directory that does not exist, including
parents. Existing directories are left alone, so running the command
twice creates nothing the second time.`,
	Example: `  dkpkg mkdirs
  dkpkg mkdirs --dry-run

See Also: dkpkg missing`,
	Args: cobra.NoArgs,
	RunE: runMkdirs,
}

func runMkdirs(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if mkdirsDryRun {
		for _, p := range relPaths(s.layout.Missing(), s.layout.Root) {
			fmt.Fprintf(w, "would create %s\n", p)
		}
		return nil
	}

	created, err := s.layout.MakeMissing()
	if !quiet {
		for _, p := range relPaths(created, s.layout.Root) {
			fmt.Fprintf(w, "created %s\n", p)
		}
	}
	if err != nil {
		return errors.NewSystemError(err, "Check the permissions of the package root")
	}

	s.log.Info("directories created", "count", len(created))
	return nil
}
