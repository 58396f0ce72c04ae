package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/layout"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a package directory interactively",
	Long: `Open a fuzzy finder over the layout directories and print the
absolute path of the one selected. Pressing Esc prints nothing.`,
	Example: `  cd "$(dkpkg pick)"

See Also: dkpkg get`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

// findEntry is swapped out by tests; the real finder needs a terminal.
var findEntry = func(entries []layout.Entry, label func(int) string, preview func(i, w, h int) string) (int, error) {
	return fuzzyfinder.Find(entries, label, fuzzyfinder.WithPreviewWindow(preview))
}

func runPick(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	entries := pathEntries(s.layout)
	if len(entries) == 0 {
		return nil
	}

	idx, err := findEntry(entries,
		func(i int) string {
			return entries[i].Key
		},
		func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			p := layout.Path(entries[i].Value)
			state := "missing"
			if s.layout.Exists(p) {
				state = "exists"
			}
			return fmt.Sprintf("Key:  %s\nPath: %s\n\n%s", entries[i].Key, p, state)
		},
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), entries[idx].Value)
	return nil
}

// pathEntries returns the non-empty path fields of l with absolute values.
func pathEntries(l *layout.Layout) []layout.Entry {
	var out []layout.Entry
	for _, e := range l.Entries(layout.DumpAbsolute) {
		if e.Value == "" || !layout.IsPathKey(e.Key) {
			continue
		}
		out = append(out, e)
	}
	return out
}
