package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dkpkg/internal/config"
	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/layout"
	"github.com/thoreinstein/dkpkg/internal/logging"
	"github.com/thoreinstein/dkpkg/internal/paths"
)

// session bundles the resolved inputs of a layout command.
type session struct {
	root       string
	configFile string
	config     *config.Config
	layout     *layout.Layout
	log        *slog.Logger
}

// resolveRoot returns the absolute package root from --root, or the root
// discovered from the working directory.
func resolveRoot() (string, error) {
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return "", errors.Wrapf(err, "resolving %s", rootFlag)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting working directory")
	}
	return paths.FindRoot(wd)
}

// loadConfig reads the config file for root: --config when given,
// otherwise whichever file config.Find selects.
func loadConfig(root string) (*config.Config, string, error) {
	config.Init()

	path := configFlag
	if path == "" {
		path = config.Find(root)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, errors.NewConfigError(err)
	}
	return cfg, path, nil
}

// conventionList returns the known conventions as a comma separated list.
func conventionList() string {
	names := make([]string, 0, len(layout.Conventions()))
	for _, c := range layout.Conventions() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// loadSession resolves root, config, overrides and convention and builds
// the layout.
func loadSession(cmd *cobra.Command) (*session, error) {
	log := logging.FromContext(cmd.Context())

	root, err := resolveRoot()
	if err != nil {
		return nil, errors.NewSystemError(err, "Pass the package root with --root")
	}

	cfg, cfgFile, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	convention := cfg.LayoutConvention()
	if conventionFlag != "" {
		convention = layout.Convention(conventionFlag)
	}
	if !convention.Valid() {
		return nil, errors.NewUserError(
			errors.Newf("invalid convention %q", convention),
			"Valid conventions: "+conventionList())
	}

	overrides := cfg.LayoutOverrides(root)
	cliOverrides, err := parseOverrides(setFlags)
	if err != nil {
		return nil, err
	}
	for k, v := range cliOverrides {
		overrides[k] = v
	}

	l, err := layout.New(root, overrides,
		layout.WithLogger(log),
		layout.WithConvention(convention),
	)
	if err != nil {
		return nil, errors.NewSystemError(err, "")
	}

	log.Debug("layout resolved",
		"root", root,
		"config", cfgFile,
		"convention", string(convention),
		"overrides", len(overrides),
	)

	return &session{
		root:       root,
		configFile: cfgFile,
		config:     cfg,
		layout:     l,
		log:        log,
	}, nil
}

// parseOverrides turns key=value pairs into layout overrides. The value may
// be empty, which selects the default for that key.
func parseOverrides(values []string) (layout.Overrides, error) {
	out := make(layout.Overrides, len(values))
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewUserError(
				errors.Wrapf(errors.ErrInvalidOverride, "%q", kv),
				"Use --set key=value, for example --set build=/tmp/out")
		}
		out[key] = value
	}
	return out, nil
}

// relPaths renders ps relative to root, for listing output.
func relPaths(ps []layout.Path, root layout.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Rel(root)
	}
	return out
}

func absPaths(ps []layout.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}
