package layout

import (
	"sort"
	"strings"
)

// Canonical field keys. These are the names used by overrides, the text
// dump and the INI export.
const (
	KeyRoot            = "root"
	KeyLocation        = "location"
	KeyPackageName     = "package_name"
	KeyName            = "name"
	KeyDocs            = "docs"
	KeyTests           = "tests"
	KeyTestsJS         = "tests_js"
	KeyBuild           = "build"
	KeySource          = "source"
	KeySourceJS        = "source_js"
	KeySourceLess      = "source_less"
	KeySourceStyles    = "source_styles"
	KeyDjangoTemplates = "django_templates"
	KeyDjangoStatic    = "django_static"
	KeyDjangoModels    = "django_models"
	KeyDjangoModelsDir = "django_models_dir"
	KeyDjangoModelsPy  = "django_models_py"
	KeyBuildCoverage   = "build_coverage"
	KeyBuildDocs       = "build_docs"
	KeyBuildLintscore  = "build_lintscore"
	KeyBuildMeta       = "build_meta"
	KeyBuildPytest     = "build_pytest"
	KeyPublicDir       = "public_dir"
	KeyAppTemplates    = "app_templates"
)

// field describes one catalogue entry. Text fields (names) are never
// rendered relative to the root.
type field struct {
	key  string
	path bool
	get  func(*Layout) string
	set  func(*Layout, string)
}

func pathField(key string, ptr func(*Layout) *Path) field {
	return field{
		key:  key,
		path: true,
		get:  func(l *Layout) string { return string(*ptr(l)) },
		set:  func(l *Layout, v string) { *ptr(l) = Path(v) },
	}
}

func textField(key string, ptr func(*Layout) *string) field {
	return field{
		key: key,
		get: func(l *Layout) string { return *ptr(l) },
		set: func(l *Layout, v string) { *ptr(l) = v },
	}
}

// catalogue lists every named field of a Layout.
var catalogue = []field{
	pathField(KeyRoot, func(l *Layout) *Path { return &l.Root }),
	pathField(KeyLocation, func(l *Layout) *Path { return &l.Location }),
	textField(KeyPackageName, func(l *Layout) *string { return &l.PackageName }),
	textField(KeyName, func(l *Layout) *string { return &l.Name }),
	pathField(KeyDocs, func(l *Layout) *Path { return &l.Docs }),
	pathField(KeyTests, func(l *Layout) *Path { return &l.Tests }),
	pathField(KeyTestsJS, func(l *Layout) *Path { return &l.TestsJS }),
	pathField(KeyBuild, func(l *Layout) *Path { return &l.Build }),
	pathField(KeySource, func(l *Layout) *Path { return &l.Source }),
	pathField(KeySourceJS, func(l *Layout) *Path { return &l.SourceJS }),
	pathField(KeySourceLess, func(l *Layout) *Path { return &l.SourceLess }),
	pathField(KeySourceStyles, func(l *Layout) *Path { return &l.SourceStyles }),
	pathField(KeyDjangoTemplates, func(l *Layout) *Path { return &l.DjangoTemplates }),
	pathField(KeyDjangoStatic, func(l *Layout) *Path { return &l.DjangoStatic }),
	pathField(KeyDjangoModelsDir, func(l *Layout) *Path { return &l.DjangoModelsDir }),
	pathField(KeyDjangoModelsPy, func(l *Layout) *Path { return &l.DjangoModelsPy }),
	pathField(KeyBuildCoverage, func(l *Layout) *Path { return &l.BuildCoverage }),
	pathField(KeyBuildDocs, func(l *Layout) *Path { return &l.BuildDocs }),
	pathField(KeyBuildLintscore, func(l *Layout) *Path { return &l.BuildLintscore }),
	pathField(KeyBuildMeta, func(l *Layout) *Path { return &l.BuildMeta }),
	pathField(KeyBuildPytest, func(l *Layout) *Path { return &l.BuildPytest }),
	pathField(KeyPublicDir, func(l *Layout) *Path { return &l.PublicDir }),
	pathField(KeyAppTemplates, func(l *Layout) *Path { return &l.AppTemplates }),
}

// aliases maps legacy key names onto canonical keys.
var aliases = map[string]string{
	"styles":        KeySourceStyles,
	"source_scss":   KeySourceStyles,
	"public":        KeyPublicDir,
	"build_dir":     KeyBuild,
	"source_dir":    KeySource,
	"docs_dir":      KeyDocs,
	"tests_dir":     KeyTests,
	"static_dir":    KeyDjangoStatic,
	"templates_dir": KeyDjangoTemplates,
	"coverage":      KeyBuildCoverage,
	"coverage_dir":  KeyBuildCoverage,
	"lintscore_dir": KeyBuildLintscore,
	"meta_dir":      KeyBuildMeta,
	"pytest_dir":    KeyBuildPytest,
	"package_dir":   KeyRoot,
	"pyroot_dir":    KeyRoot,
}

var fieldIndex = func() map[string]field {
	m := make(map[string]field, len(catalogue))
	for _, f := range catalogue {
		m[f.key] = f
	}
	return m
}()

// Canonical resolves key to its canonical form. Aliases are translated;
// every other key is returned unchanged.
func Canonical(key string) string {
	if c, ok := aliases[key]; ok {
		return c
	}
	return key
}

// Known reports whether key (or the key it aliases) names a catalogue field.
// The write-only key "django_models" is known as well.
func Known(key string) bool {
	key = Canonical(key)
	if key == KeyDjangoModels {
		return true
	}
	_, ok := fieldIndex[key]
	return ok
}

// IsPathKey reports whether key (or the key it aliases) names a field that
// holds a filesystem path rather than a name.
func IsPathKey(key string) bool {
	key = Canonical(key)
	if key == KeyDjangoModels {
		return true
	}
	f, ok := fieldIndex[key]
	return ok && f.path
}

// Keys returns the canonical keys of all catalogue fields in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalogue))
	for _, f := range catalogue {
		keys = append(keys, f.key)
	}
	sort.Strings(keys)
	return keys
}

// Aliases returns the legacy key names accepted in place of canonical keys.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

func isPrivate(key string) bool {
	return strings.HasPrefix(key, "_")
}
