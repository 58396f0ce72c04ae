package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/logging"
	"github.com/thoreinstein/dkpkg/internal/pathtree"
	"github.com/thoreinstein/dkpkg/pkg/fileutil"
)

var (
	treeFile string
	treeYAML bool
)

func init() {
	treeCmd.Flags().StringVarP(&treeFile, "file", "f", "", "read paths from file, one per line (- for stdin)")
	treeCmd.Flags().BoolVar(&treeYAML, "yaml", false, "print the tree as YAML")
	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree [path...]",
	Short: "Group slash-separated paths into a tree",
	Long: `Group a flat list of slash-separated paths into a nested tree.

Paths come from the arguments, from --file, or from stdin when neither
is given and stdin is not a terminal. Blank lines and lines starting
with # are skipped.`,
	Example: `  dkpkg tree a/b/c a/b/d a/e
  git ls-files | dkpkg tree
  dkpkg tree --yaml -f paths.txt`,
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	items, err := treeInput(cmd, args)
	if err != nil {
		return err
	}

	t := pathtree.Build(items)
	w := cmd.OutOrStdout()
	if treeYAML {
		fmt.Fprint(w, t.String())
		return nil
	}
	return errors.Wrap(t.Render(w), "rendering tree")
}

// treeInput collects the paths to group.
func treeInput(cmd *cobra.Command, args []string) ([]string, error) {
	items := append([]string(nil), args...)

	var (
		data []byte
		err  error
	)
	switch {
	case treeFile == "-":
		data, err = fileutil.ReadWithLimit(cmd.InOrStdin())
	case treeFile != "":
		data, err = fileutil.ReadFileWithLimit(afero.NewOsFs(), treeFile)
	case len(args) == 0 && !isTerminal(cmd):
		data, err = fileutil.ReadWithLimit(cmd.InOrStdin())
	}
	if err != nil {
		return nil, errors.NewUserError(err, "")
	}

	return append(items, fileutil.Lines(data)...), nil
}

// isTerminal reports whether the command reads from an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	return logging.IsTTY(cmd.InOrStdin())
}
