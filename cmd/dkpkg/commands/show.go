package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/layout"
	"github.com/thoreinstein/dkpkg/pkg/fileutil"
)

// Output formats accepted by show.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var (
	showAbsolute bool
	showFormat   string
	showOutput   string
)

func init() {
	showCmd.Flags().BoolVarP(&showAbsolute, "absolute", "a", false, "print absolute paths")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", formatText, "output format: text, json, yaml, toml")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the package layout",
	Long: `Print every layout field and extra attribute, sorted by key.

Paths are shown relative to the package root unless --absolute is given.
Keys starting with an underscore are private and never shown.`,
	Example: `  # Aligned two-column listing
  dkpkg show

  # Absolute paths as JSON
  dkpkg show --absolute --format json

  # Save as YAML
  dkpkg show -f yaml -o layout.yaml

See Also: dkpkg get, dkpkg ini`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	style := layout.DumpRelative
	if showAbsolute {
		style = layout.DumpAbsolute
	}

	out, err := renderLayout(s.layout, style, showFormat)
	if err != nil {
		return err
	}

	if showOutput != "" {
		if err := fileutil.WriteText(s.layout.Fs(), showOutput, out, 0644); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing %s", showOutput), "")
		}
		s.log.Info("layout written", "path", showOutput, "format", showFormat)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}

// renderLayout encodes l in the named format.
func renderLayout(l *layout.Layout, style layout.DumpStyle, format string) (string, error) {
	switch format {
	case formatText:
		return l.Format(style), nil
	case formatJSON:
		data, err := json.MarshalIndent(l.Values(style), "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "marshaling JSON")
		}
		return string(data), nil
	case formatYAML:
		data, err := yaml.Marshal(l.Values(style))
		if err != nil {
			return "", errors.Wrap(err, "marshaling YAML")
		}
		return string(data), nil
	case formatTOML:
		data, err := toml.Marshal(l.Values(style))
		if err != nil {
			return "", errors.Wrap(err, "marshaling TOML")
		}
		return string(data), nil
	default:
		return "", errors.NewUserError(
			errors.Wrapf(errors.ErrUnknownFormat, "%q", format),
			"Valid formats: text, json, yaml, toml")
	}
}
