// Package config provides configuration management for dkpkg using Viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dkpkg/internal/layout"
	"github.com/thoreinstein/dkpkg/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "DKPKG"

// DefaultSection is the INI section written when none is configured.
const DefaultSection = "dkbuild"

// ProjectFiles are the file names searched for in the package root, in order.
var ProjectFiles = []string{".dkpkg.yaml", ".dkpkg.yml", ".dkpkg.toml"}

// UserFiles are the file names searched for in the user config directory.
var UserFiles = []string{"config.yaml", "config.yml", "config.toml"}

// Config represents the top-level configuration structure.
type Config struct {
	Version    int               `mapstructure:"version" yaml:"version" toml:"version" json:"version"`
	Convention string            `mapstructure:"convention" yaml:"convention" toml:"convention" json:"convention"`
	INI        INIConfig         `mapstructure:"ini" yaml:"ini" toml:"ini" json:"ini"`
	Overrides  map[string]string `mapstructure:"overrides" yaml:"overrides" toml:"overrides" json:"overrides"`
}

// INIConfig controls the INI export.
type INIConfig struct {
	File    string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	Section string `mapstructure:"section" yaml:"section" toml:"section" json:"section"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:    1,
		Convention: string(layout.ConventionSibling),
		INI: INIConfig{
			Section: DefaultSection,
		},
		Overrides: map[string]string{},
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any state left by a previous Init or Load is discarded.
func Init() {
	viper.Reset()

	// Environment variable support: DKPKG_CONVENTION, DKPKG_INI_SECTION, ...
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("convention", def.Convention)
	viper.SetDefault("ini.file", def.INI.File)
	viper.SetDefault("ini.section", def.INI.Section)
}

// UserDir returns the directory searched for the user-wide config file.
// DKPKG_CONFIG_DIR takes precedence over the XDG location.
func UserDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return paths.UserConfigDir()
}

// Find returns the config file that applies to the package at root: a
// project file in root, otherwise a user file, otherwise "".
func Find(root string) string {
	if root != "" {
		if f := firstFile(root, ProjectFiles); f != "" {
			return f
		}
	}
	return firstFile(UserDir(), UserFiles)
}

func firstFile(dir string, names []string) string {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Read reads the configuration file at path without validating it.
// An empty path yields the defaults, adjusted by environment variables.
func Read(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	if cfg.Overrides == nil {
		cfg.Overrides = map[string]string{}
	}
	return &cfg, nil
}

// Load reads the configuration file at path and validates the result.
// The first validation problem is returned; use Read and Validate to see
// all of them.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return cfg, nil
}

// LayoutOverrides returns the configured overrides with relative path
// values anchored at root. Name fields and extra attributes are passed
// through unchanged.
func (c *Config) LayoutOverrides(root string) layout.Overrides {
	out := make(layout.Overrides, len(c.Overrides))
	for k, v := range c.Overrides {
		if v != "" && layout.IsPathKey(k) && !filepath.IsAbs(v) {
			v = filepath.Join(root, v)
		}
		out[k] = v
	}
	return out
}

// LayoutConvention returns the configured convention, falling back to the
// sibling convention when none is set.
func (c *Config) LayoutConvention() layout.Convention {
	if c.Convention == "" {
		return layout.ConventionSibling
	}
	return layout.Convention(c.Convention)
}
