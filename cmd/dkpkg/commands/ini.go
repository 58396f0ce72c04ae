package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/pkg/fileutil"
)

var (
	iniSection string
	iniOutput  string
)

func init() {
	iniCmd.Flags().StringVarP(&iniSection, "section", "s", "", "section name (default: ini.section from config, dkbuild)")
	iniCmd.Flags().StringVarP(&iniOutput, "output", "o", "", "write to file instead of stdout (default: ini.file from config; - forces stdout)")
	rootCmd.AddCommand(iniCmd)
}

var iniCmd = &cobra.Command{
	Use:   "ini",
	Short: "Export the layout as INI",
	Long: `Export the layout as an INI file with a single section holding root,
location, name, docs, tests, source, source_js, source_less, build, the
build output directories, django_templates and django_static, in that
order.`,
	Example: `  dkpkg ini
  dkpkg ini --section paths -o build/layout.ini

See Also: dkpkg show`,
	Args: cobra.NoArgs,
	RunE: runINI,
}

func runINI(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	section := iniSection
	if section == "" {
		section = s.config.INI.Section
	}
	output := iniOutput
	if output == "" && s.config.INI.File != "" {
		// Configured files live with the package.
		output = s.config.INI.File
		if !filepath.IsAbs(output) {
			output = filepath.Join(s.root, output)
		}
	}

	text, err := s.layout.WriteINI(output, section)
	if err != nil {
		return errors.NewUserError(err, "Pass a non-empty --section")
	}

	if output == "" || output == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(text, "\n"))
		return nil
	}

	if err := fileutil.WriteText(s.layout.Fs(), output, text, 0644); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", output), "")
	}
	s.log.Info("ini written", "path", output, "section", section)
	return nil
}
