// Package config provides configuration management for the dkpkg CLI.
//
// The configuration supplies the layout convention, the INI export
// settings and a set of layout overrides, so a package can pin its
// directory layout in a file instead of repeating --set flags.
//
// # Configuration File
//
// A project file (.dkpkg.yaml, .dkpkg.yml or .dkpkg.toml) in the package
// root takes precedence over the user file in ~/.config/dkpkg/. [Find]
// returns whichever applies:
//
//	version: 1
//	convention: sibling
//	ini:
//	  file: dkbuild.ini
//	  section: dkbuild
//	overrides:
//	  build: /tmp/out
//	  source_js: frontend
//
// Relative override paths are anchored at the package root by
// [Config.LayoutOverrides].
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load(config.Find(root))
//	if err != nil {
//	    return err
//	}
//
// Scalar settings can also come from the environment, for example
// DKPKG_CONVENTION=nested or DKPKG_INI_SECTION=build.
//
// # Validation
//
// [Load] validates automatically. [Validate] returns every problem found:
//
//	for _, e := range config.Validate(cfg) {
//	    fmt.Println(e)
//	}
package config
