package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dkpkg/internal/config"
	"github.com/thoreinstein/dkpkg/internal/errors"
)

var configFormat string

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", formatYAML, "output format: yaml, toml, json")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect dkpkg configuration",
	Long: `Inspect the configuration that applies to the package: a .dkpkg.yaml,
.dkpkg.yml or .dkpkg.toml file in the package root, or otherwise
~/.config/dkpkg/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  dkpkg config

  # Check a config file
  dkpkg config validate .dkpkg.yaml

See Also: dkpkg show`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration after defaults and DKPKG_* environment variables are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file and report every problem found.

Without an argument, validates the file that applies to the package.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(root)
	if err != nil {
		return err
	}

	out, err := renderConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}

func renderConfig(cfg *config.Config, format string) (string, error) {
	switch format {
	case formatYAML:
		data, err := yaml.Marshal(cfg)
		return string(data), errors.Wrap(err, "marshaling config")
	case formatTOML:
		data, err := toml.Marshal(cfg)
		return string(data), errors.Wrap(err, "marshaling config")
	case formatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		return string(data), errors.Wrap(err, "marshaling config")
	default:
		return "", errors.NewUserError(
			errors.Wrapf(errors.ErrUnknownFormat, "%q", format),
			"Valid formats: yaml, toml, json")
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := configFlag
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		root, err := resolveRoot()
		if err != nil {
			return err
		}
		path = config.Find(root)
	}

	w := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(w, "No configuration file found; defaults apply.")
		return nil
	}

	config.Init()
	cfg, err := config.Read(path)
	if err != nil {
		return reportValidation(w, path, []error{err})
	}
	return reportValidation(w, path, config.Validate(cfg))
}

func reportValidation(w io.Writer, path string, errs []error) error {
	if len(errs) == 0 {
		fmt.Fprintln(w, color.GreenString("✓ %s is valid", path))
		return nil
	}

	fmt.Fprintf(w, "%s: %s\n", path, color.RedString("%d error(s)", len(errs)))
	for _, e := range errs {
		fmt.Fprintf(w, "  %s %s\n", color.RedString("✗"), e)
	}
	return errors.NewUserError(
		errors.Wrapf(errors.ErrInvalidConfig, "%s", path),
		"Fix the errors above and run: dkpkg config validate")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		root, err := resolveRoot()
		if err != nil {
			return err
		}
		path = config.Find(root)
	}
	if path == "" {
		path = "(none)"
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
