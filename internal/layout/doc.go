// Package layout computes the conventional directory layout of a package.
//
// A [Layout] is built from a package root and optional overrides. Each
// directory (source, tests, docs, build outputs, Django assets) has a
// default derived from the fields resolved before it, and each can be
// overridden by key:
//
//	l, err := layout.New("mypkg", layout.Overrides{"build": "/tmp/out"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.BuildCoverage) // /tmp/out/coverage
//
// # Filesystem
//
// A Layout never touches the filesystem while it is built. [Layout.Missing],
// [Layout.Models] and [Layout.IsFramework] check existence when called, and
// [Layout.MakeMissing] creates missing directories. All of them go through
// an [afero.Fs], the OS filesystem unless [WithFs] says otherwise.
//
// # Output
//
// [Layout.String] renders a sorted two column dump and [Layout.WriteINI]
// renders a fixed subset of fields as an INI section.
//
// # Legacy names
//
// Older tooling used other names for several fields (build_dir,
// templates_dir, ...). They are accepted as override keys and by
// [Layout.Get] and [Layout.Set]; [Compat] offers them as methods.
package layout
