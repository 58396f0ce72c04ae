package layout

// Compat exposes the legacy accessor names over a Layout. Every getter and
// setter reads or writes the canonical field, so changes made through
// Compat are visible on the Layout and the other way around.
type Compat struct {
	l *Layout
}

// NewCompat returns the legacy view of l.
func NewCompat(l *Layout) Compat {
	return Compat{l: l}
}

// Layout returns the wrapped layout.
func (c Compat) Layout() *Layout {
	return c.l
}

// BuildDir returns the build field.
func (c Compat) BuildDir() Path {
	return c.l.Build
}

// SetBuildDir assigns the build field.
func (c Compat) SetBuildDir(p Path) {
	c.l.Build = p
}

// LintscoreDir returns the build_lintscore field.
func (c Compat) LintscoreDir() Path {
	return c.l.BuildLintscore
}

// SetLintscoreDir assigns the build_lintscore field.
func (c Compat) SetLintscoreDir(p Path) {
	c.l.BuildLintscore = p
}

// MetaDir returns the build_meta field.
func (c Compat) MetaDir() Path {
	return c.l.BuildMeta
}

// SetMetaDir assigns the build_meta field.
func (c Compat) SetMetaDir(p Path) {
	c.l.BuildMeta = p
}

// Coverage returns the build_coverage field.
func (c Compat) Coverage() Path {
	return c.l.BuildCoverage
}

// SetCoverage assigns the build_coverage field.
func (c Compat) SetCoverage(p Path) {
	c.l.BuildCoverage = p
}

// CoverageDir returns the build_coverage field.
func (c Compat) CoverageDir() Path {
	return c.l.BuildCoverage
}

// SetCoverageDir assigns the build_coverage field.
func (c Compat) SetCoverageDir(p Path) {
	c.l.BuildCoverage = p
}

// DocsDir returns the docs field.
func (c Compat) DocsDir() Path {
	return c.l.Docs
}

// SetDocsDir assigns the docs field.
func (c Compat) SetDocsDir(p Path) {
	c.l.Docs = p
}

// PackageDir returns the root field.
func (c Compat) PackageDir() Path {
	return c.l.Root
}

// SetPackageDir assigns the root field.
func (c Compat) SetPackageDir(p Path) {
	c.l.Root = p
}

// PyrootDir returns the root field.
func (c Compat) PyrootDir() Path {
	return c.l.Root
}

// SetPyrootDir assigns the root field.
func (c Compat) SetPyrootDir(p Path) {
	c.l.Root = p
}

// TestsDir returns the tests field.
func (c Compat) TestsDir() Path {
	return c.l.Tests
}

// SetTestsDir assigns the tests field.
func (c Compat) SetTestsDir(p Path) {
	c.l.Tests = p
}

// SourceDir returns the source field.
func (c Compat) SourceDir() Path {
	return c.l.Source
}

// SetSourceDir assigns the source field.
func (c Compat) SetSourceDir(p Path) {
	c.l.Source = p
}

// Public returns the public_dir field.
func (c Compat) Public() Path {
	return c.l.PublicDir
}

// SetPublic assigns the public_dir field.
func (c Compat) SetPublic(p Path) {
	c.l.PublicDir = p
}

// PytestDir returns the build_pytest field.
func (c Compat) PytestDir() Path {
	return c.l.BuildPytest
}

// SetPytestDir assigns the build_pytest field.
func (c Compat) SetPytestDir(p Path) {
	c.l.BuildPytest = p
}

// StaticDir returns the django_static field.
func (c Compat) StaticDir() Path {
	return c.l.DjangoStatic
}

// SetStaticDir assigns the django_static field.
func (c Compat) SetStaticDir(p Path) {
	c.l.DjangoStatic = p
}

// TemplatesDir returns the django_templates field.
func (c Compat) TemplatesDir() Path {
	return c.l.DjangoTemplates
}

// SetTemplatesDir assigns the django_templates field.
func (c Compat) SetTemplatesDir(p Path) {
	c.l.DjangoTemplates = p
}
