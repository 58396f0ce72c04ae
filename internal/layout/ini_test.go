package layout

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteINI(t *testing.T) {
	l, _ := newMem(t, "/work/mypkg", nil)

	out, err := l.WriteINI("ignored-filename", "dkbuild")
	require.NoError(t, err)

	want := []string{
		"[dkbuild]",
		"root = /work/mypkg",
		"location = /work",
		"name = mypkg",
		"docs = /work/mypkg/docs",
		"tests = /work/mypkg/tests",
		"source = /work/mypkg/mypkg",
		"source_js = /work/mypkg/js",
		"source_less = /work/mypkg/less",
		"build = /work/mypkg/build",
		"build_coverage = /work/mypkg/build/coverage",
		"build_docs = /work/mypkg/build/docs",
		"build_lintscore = /work/mypkg/build/lintscore",
		"build_meta = /work/mypkg/build/meta",
		"build_pytest = /work/mypkg/build/pytest",
		"django_templates = /work/mypkg/mypkg/templates",
		"django_static = /work/mypkg/mypkg/static",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestWriteINI_DoesNotWriteFile(t *testing.T) {
	l, fs := newMem(t, "/work/mypkg", nil)

	_, err := l.WriteINI("/work/mypkg/setup.cfg", "dkbuild")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/work/mypkg/setup.cfg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteINI_ReflectsOverrides(t *testing.T) {
	l, _ := newMem(t, "/work/mypkg", Overrides{"build": "/tmp/out", "extra": "x"})

	out, err := l.WriteINI("", "paths")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[paths]\n"))
	assert.Contains(t, out, "build_meta = /tmp/out/meta\n")
	assert.NotContains(t, out, "extra")
}

func TestWriteINI_ValuesVerbatim(t *testing.T) {
	tests := []struct {
		root string
		name string
	}{
		{root: "/work/my#pkg;x", name: "my#pkg;x"},
		{root: "/work/a`b", name: "a`b"},
		{root: `/work/"q"`, name: `"q"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newMem(t, tt.root, nil)

			out, err := l.WriteINI("", "dkbuild")
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, len(INIKeys)+1)
			assert.Equal(t, "root = "+tt.root, lines[1])
			assert.Equal(t, "name = "+tt.name, lines[3])
			assert.Equal(t, "source = "+tt.root+"/"+tt.name, lines[6])
		})
	}
}

func TestWriteINI_EmptySection(t *testing.T) {
	l, _ := newMem(t, "/work/mypkg", nil)

	_, err := l.WriteINI("", "")
	require.Error(t, err)
}

func TestRenderINI_UnknownField(t *testing.T) {
	l, _ := newMem(t, "/work/mypkg", nil)

	_, err := l.renderINI("dkbuild", []string{"root", "no_such_field"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownField)
}
