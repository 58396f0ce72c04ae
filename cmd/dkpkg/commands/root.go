// Package commands implements the CLI commands for dkpkg.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/cmd"
	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/logging"
)

// rootFlag holds the value of the --root flag.
var rootFlag string

// setFlags holds every --set key=value override.
var setFlags []string

// configFlag holds the value of the --config flag.
var configFlag string

// conventionFlag holds the value of the --convention flag.
var conventionFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logOutput is the open --log-file handle, closed once the command ends.
var logOutput *os.File

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlag, "root", "r", "",
		"package root (default: nearest directory with setup.py, pyproject.toml, setup.cfg or .git)")
	rootCmd.PersistentFlags().StringArrayVar(&setFlags, "set", nil,
		"override a layout field, as key=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default: .dkpkg.yaml in the package root, then ~/.config/dkpkg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&conventionFlag, "convention", "",
		"js/less/styles placement: "+conventionList())
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("dkpkg version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "dkpkg",
	Short: "Inspect and create the directory layout of a package",
	Long: `dkpkg computes the directory layout of a package from its root
directory: source, tests, docs, build outputs and the optional Django
static, templates and models locations.

Any field can be overridden with --set key=value or in a .dkpkg.yaml
file. Overriding a directory moves everything derived from it, so
--set build=/tmp/out also moves build/coverage, build/docs and the
other build outputs.`,
	Example: `  # Show the layout of the package in the current directory
  dkpkg show

  # Create every missing directory
  dkpkg mkdirs

  # Export the layout as INI with a custom build directory
  dkpkg ini --set build=/tmp/out

  See Also: dkpkg status, dkpkg config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Use either --quiet or --verbose")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DKPKG_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	// Command output (status, config validate) follows the same color
	// rules as the log handler.
	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Wrapf(errors.ErrUnknownFormat, "log format %q", logFormat),
			"Valid log formats: text, json")
	}

	handlers := []slog.Handler{primaryHandler}

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		logOutput = f
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the --log-file handle, if one is open. Logging falls
// back to stderr so nothing writes to the closed file.
func closeLogFile() error {
	if logOutput == nil {
		return nil
	}
	f := logOutput
	logOutput = nil
	slog.SetDefault(logging.Default())
	return errors.Wrapf(f.Close(), "closing log file %s", f.Name())
}

// Execute runs the root command. The log file is closed even when the
// command fails, which skips PersistentPostRunE.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLogFile(); err == nil {
		err = cerr
	}
	return err
}
