package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/layout"
)

func init() {
	getCmd.Long += "\n\nKeys:\n  " + strings.Join(layout.Keys(), "\n  ") +
		"\n\nLegacy names:\n  " + strings.Join(legacyNames(), "\n  ")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one layout field",
	Long: `Print the value of a single layout field. Legacy names such as
build_dir or templates_dir are accepted, as are extra attributes set
with --set.`,
	Example: `  dkpkg get source
  dkpkg get coverage_dir

See Also: dkpkg show`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	RunE:              runGet,
}

// legacyNames lists each alias with the key it stands for, sorted by alias.
func legacyNames() []string {
	aliases := layout.Aliases()
	names := make([]string, 0, len(aliases))
	for alias, key := range aliases {
		names = append(names, alias+" -> "+key)
	}
	sort.Strings(names)
	return names
}

// completeKeys completes layout keys and their legacy names.
func completeKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, k := range append(layout.Keys(), layout.KeyDjangoModels) {
		if strings.HasPrefix(k, toComplete) {
			out = append(out, k)
		}
	}
	for alias := range layout.Aliases() {
		if strings.HasPrefix(alias, toComplete) {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoFileComp
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	v, err := s.layout.Get(args[0])
	if err != nil {
		if errors.Is(err, layout.ErrUnknownField) {
			return errors.NewUserError(err, "Run 'dkpkg show' to list the known fields")
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
