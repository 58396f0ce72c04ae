package layout

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/thoreinstein/dkpkg/internal/logging"
)

// DirPerm is the permission used for directories created by MakeMissing.
const DirPerm = 0o755

// ErrUnknownField indicates a key that names no layout field.
var ErrUnknownField = errors.New("unknown layout field")

// Overrides maps field keys (canonical or alias) to replacement values.
// Keys that name no field are kept as extra attributes.
type Overrides map[string]string

// Layout holds the directory layout of one package.
//
//	<location>
//	   `-- <root>                package_name
//	       |-- <name>            source
//	       |   |-- static        django_static
//	       |   |-- templates     django_templates
//	       |   |   `-- <name>    app_templates
//	       |   `-- models[.py]   django_models_dir / django_models_py
//	       |-- js                source_js
//	       |-- less              source_less
//	       |-- styles            source_styles
//	       |-- docs              docs
//	       |-- tests             tests
//	       |   `-- js            tests_js
//	       |-- public            public_dir
//	       `-- build             build
//	           |-- coverage      build_coverage
//	           |-- docs          build_docs
//	           |-- lintscore     build_lintscore
//	           |-- meta          build_meta
//	           `-- pytest        build_pytest
//
// All fields are resolved once by New. Assigning a field afterwards changes
// only that field; nothing derived from it is recomputed.
type Layout struct {
	Root        Path
	Location    Path
	PackageName string
	Name        string

	Docs    Path
	Tests   Path
	TestsJS Path

	Source       Path
	SourceJS     Path
	SourceLess   Path
	SourceStyles Path

	DjangoTemplates Path
	DjangoStatic    Path
	DjangoModelsDir Path
	DjangoModelsPy  Path
	AppTemplates    Path

	Build          Path
	BuildCoverage  Path
	BuildDocs      Path
	BuildLintscore Path
	BuildMeta      Path
	BuildPytest    Path

	PublicDir Path

	// Extra holds override keys that name no field.
	Extra map[string]string

	fs         afero.Fs
	log        *slog.Logger
	convention Convention
}

// New computes the layout of the package rooted at root.
//
// Every field is taken from overrides when present and non-empty, and
// otherwise derived from fields resolved before it, so overriding name
// moves source, and overriding source or build moves everything beneath
// them. The root need not exist. The only error is failure to make a
// relative root absolute.
func New(root string, overrides Overrides, opts ...Option) (*Layout, error) {
	l := &Layout{
		Extra:      make(map[string]string),
		fs:         afero.NewOsFs(),
		log:        logging.NewDiscard(),
		convention: ConventionSibling,
	}
	for _, opt := range opts {
		opt(l)
	}

	kw := resolveOverrides(overrides, l.Extra)

	pick := func(key string, def Path) Path {
		if v, ok := kw[key]; ok {
			return Path(v)
		}
		return def
	}

	if v, ok := kw[KeyRoot]; ok {
		l.Root = Path(v)
	} else {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving package root %q", root)
		}
		l.Root = Path(abs)
	}

	l.Location = pick(KeyLocation, l.Root.Dir())
	l.PackageName = string(pick(KeyPackageName, Path(l.Root.Base())))
	l.Name = string(pick(KeyName, Path(strings.ReplaceAll(l.PackageName, "-", ""))))

	l.Source = pick(KeySource, l.Root.Join(l.Name))
	l.Build = pick(KeyBuild, l.Root.Join("build"))
	l.Docs = pick(KeyDocs, l.Root.Join("docs"))
	l.Tests = pick(KeyTests, l.Root.Join("tests"))
	l.TestsJS = pick(KeyTestsJS, l.Tests.Join("js"))

	auxBase := l.Root
	if l.convention == ConventionNested {
		auxBase = l.Source
	}
	l.SourceJS = pick(KeySourceJS, auxBase.Join("js"))
	l.SourceLess = pick(KeySourceLess, auxBase.Join("less"))
	l.SourceStyles = pick(KeySourceStyles, auxBase.Join("styles"))

	l.BuildCoverage = pick(KeyBuildCoverage, l.Build.Join("coverage"))
	l.BuildDocs = pick(KeyBuildDocs, l.Build.Join("docs"))
	l.BuildLintscore = pick(KeyBuildLintscore, l.Build.Join("lintscore"))
	l.BuildMeta = pick(KeyBuildMeta, l.Build.Join("meta"))
	l.BuildPytest = pick(KeyBuildPytest, l.Build.Join("pytest"))

	l.DjangoTemplates = pick(KeyDjangoTemplates, l.Source.Join("templates"))
	l.DjangoStatic = pick(KeyDjangoStatic, l.Source.Join("static"))

	models, hasModels := kw[KeyDjangoModels]
	if hasModels {
		l.DjangoModelsDir = Path(models)
		l.DjangoModelsPy = Path(models)
	} else {
		l.DjangoModelsDir = l.Source.Join("models")
		l.DjangoModelsPy = l.Source.Join("models.py")
	}
	l.DjangoModelsDir = pick(KeyDjangoModelsDir, l.DjangoModelsDir)
	l.DjangoModelsPy = pick(KeyDjangoModelsPy, l.DjangoModelsPy)

	l.PublicDir = pick(KeyPublicDir, l.Root.Join("public"))

	if !l.DjangoTemplates.IsZero() {
		l.AppTemplates = pick(KeyAppTemplates, l.DjangoTemplates.Join(l.Name))
	}

	return l, nil
}

// Fs returns the filesystem the layout checks and creates directories on.
func (l *Layout) Fs() afero.Fs {
	return l.fs
}

// Convention returns the convention used for the default js, less and
// styles directories.
func (l *Layout) Convention() Convention {
	return l.convention
}

// Exists reports whether p exists on the layout filesystem. The zero Path
// never exists. Stat failures other than not-exist are logged and reported
// as absent.
func (l *Layout) Exists(p Path) bool {
	if p.IsZero() {
		return false
	}
	ok, err := afero.Exists(l.fs, string(p))
	if err != nil {
		l.log.Debug("stat failed", "path", p.String(), "error", err)
		return false
	}
	return ok
}

// Models returns the location of the Django models: the models directory
// when it exists, otherwise models.py when it exists, otherwise the zero
// Path. The check runs against the filesystem on every call.
func (l *Layout) Models() Path {
	if l.Exists(l.DjangoModelsDir) {
		return l.DjangoModelsDir
	}
	if l.Exists(l.DjangoModelsPy) {
		return l.DjangoModelsPy
	}
	return ""
}

// IsFramework reports whether the package currently contains a Django
// static directory, templates directory or models location.
func (l *Layout) IsFramework() bool {
	for _, d := range l.FrameworkDirs() {
		if l.Exists(d) {
			return true
		}
	}
	return false
}

// SourceDirs returns the directories holding source code.
func (l *Layout) SourceDirs() []Path {
	return []Path{l.Source, l.SourceJS, l.SourceLess}
}

// FrameworkDirs returns the Django specific locations. The models entry is
// the zero Path when no models directory or file exists.
func (l *Layout) FrameworkDirs() []Path {
	return []Path{l.DjangoStatic, l.DjangoTemplates, l.Models()}
}

// BuildDirs returns the build output directories.
func (l *Layout) BuildDirs() []Path {
	return []Path{
		l.Build,
		l.BuildCoverage,
		l.BuildDocs,
		l.BuildLintscore,
		l.BuildMeta,
		l.BuildPytest,
	}
}

// AllDirs returns every package directory: docs, tests, then the source,
// framework and build directories.
func (l *Layout) AllDirs() []Path {
	dirs := []Path{l.Docs, l.Tests}
	dirs = append(dirs, l.SourceDirs()...)
	dirs = append(dirs, l.FrameworkDirs()...)
	dirs = append(dirs, l.BuildDirs()...)
	return dirs
}

// Missing returns the directories from AllDirs that do not exist.
func (l *Layout) Missing() []Path {
	var missing []Path
	for _, d := range l.AllDirs() {
		if d.IsZero() || l.Exists(d) {
			continue
		}
		missing = append(missing, d)
	}
	return missing
}

// MakeMissing creates every directory reported by Missing, including
// parents, and returns the directories it created. A directory that
// appears between the check and the creation is not an error.
func (l *Layout) MakeMissing() ([]Path, error) {
	missing := l.Missing()
	created := make([]Path, 0, len(missing))
	for _, d := range missing {
		if err := l.fs.MkdirAll(string(d), DirPerm); err != nil {
			return created, errors.Wrapf(err, "creating directory %s", d)
		}
		l.log.Debug("created directory", "path", d.String())
		created = append(created, d)
	}
	return created, nil
}

// resolveOverrides maps overrides onto canonical keys and moves keys that
// name no field into extra. When several spellings of one field are given,
// the canonical key wins, and otherwise the alias that sorts last.
func resolveOverrides(overrides Overrides, extra map[string]string) map[string]string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kw := make(map[string]string, len(overrides))
	fromCanonical := make(map[string]bool, len(overrides))
	for _, k := range keys {
		v := overrides[k]
		key := Canonical(k)
		if !Known(key) {
			extra[k] = v
			continue
		}
		if v == "" || fromCanonical[key] {
			continue
		}
		kw[key] = v
		fromCanonical[key] = k == key
	}
	return kw
}

// Get returns the value of the field named by key. Aliases are accepted.
// "django_models" reports Models, empty when neither location exists.
// Keys that name no field are looked up in Extra.
func (l *Layout) Get(key string) (string, error) {
	canonical := Canonical(key)
	if canonical == KeyDjangoModels {
		return l.Models().String(), nil
	}
	if f, ok := fieldIndex[canonical]; ok {
		return f.get(l), nil
	}
	if v, ok := l.Extra[key]; ok {
		return v, nil
	}
	return "", errors.Wrapf(ErrUnknownField, "%q", key)
}

// Set assigns value to the field named by key. Nothing derived from the
// field is recomputed. "django_models" sets both models locations, and
// keys that name no field are stored in Extra.
func (l *Layout) Set(key, value string) {
	canonical := Canonical(key)
	if canonical == KeyDjangoModels {
		l.DjangoModelsDir = Path(value)
		l.DjangoModelsPy = Path(value)
		return
	}
	if f, ok := fieldIndex[canonical]; ok {
		f.set(l, value)
		return
	}
	if l.Extra == nil {
		l.Extra = make(map[string]string)
	}
	l.Extra[key] = value
}
