package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dkpkg/internal/errors"
	"github.com/thoreinstein/dkpkg/internal/layout"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestShow_Text(t *testing.T) {
	root := newPackage(t, "my-pkg")

	out, err := execute(t, "", "show", "--root", root)
	require.NoError(t, err)

	l, err := layout.New(root, nil)
	require.NoError(t, err)
	assert.Equal(t, l.String()+"\n", out)
	assert.Contains(t, out, "   source mypkg\n")
}

func TestShow_Absolute(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "show", "--root", root, "--absolute")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "build", "coverage"))
}

func TestShow_Formats(t *testing.T) {
	root := newPackage(t, "mypkg")

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "show", "--root", root, "--format", "json")
		require.NoError(t, err)
		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "mypkg", got["source"])
		assert.Equal(t, "build/pytest", got["build_pytest"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := execute(t, "", "show", "--root", root, "-f", "yaml")
		require.NoError(t, err)
		var got map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "docs", got["docs"])
	})

	t.Run("toml", func(t *testing.T) {
		out, err := execute(t, "", "show", "--root", root, "-f", "toml", "--absolute")
		require.NoError(t, err)
		var got map[string]string
		require.NoError(t, toml.Unmarshal([]byte(out), &got))
		assert.Equal(t, root, got["root"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := execute(t, "", "show", "--root", root, "-f", "xml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnknownFormat))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

func TestShow_Output(t *testing.T) {
	root := newPackage(t, "mypkg")
	dest := filepath.Join(t.TempDir(), "layout.json")

	out, err := execute(t, "", "show", "--root", root, "-f", "json", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
	assert.Contains(t, string(data), `"name": "mypkg"`)
}

func TestShow_SetOverrides(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "show", "--root", root, "--absolute",
		"--set", "build=/tmp/out", "--set", "_secret=x", "--set", "flavor=vanilla")
	require.NoError(t, err)

	assert.Contains(t, out, "build_coverage /tmp/out/coverage\n")
	assert.Contains(t, out, "flavor vanilla\n")
	assert.NotContains(t, out, "_secret")
}

func TestShow_InvalidOverride(t *testing.T) {
	root := newPackage(t, "mypkg")

	_, err := execute(t, "", "show", "--root", root, "--set", "build")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidOverride))
}

func TestShow_Convention(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "show", "--root", root, "--convention", "nested")
	require.NoError(t, err)
	assert.Contains(t, out, "source_js mypkg/js\n")

	_, err = execute(t, "", "show", "--root", root, "--convention", "flat")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Equal(t, "Valid conventions: sibling, nested", errors.SuggestionFor(err))
}

func TestShow_ProjectConfig(t *testing.T) {
	root := newPackage(t, "mypkg")
	cfg := "convention: nested\noverrides:\n  build: out\n  docs: /srv/docs\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".dkpkg.yaml"), []byte(cfg), 0o644))

	out, err := execute(t, "", "show", "--root", root, "--absolute")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(root, "out", "meta"))
	assert.Contains(t, out, "docs /srv/docs\n")
	assert.Contains(t, out, filepath.Join(root, "mypkg", "less"))

	// --set wins over the file.
	out, err = execute(t, "", "show", "--root", root, "--absolute", "--set", "docs=/other")
	require.NoError(t, err)
	assert.Contains(t, out, "docs /other\n")
}

func TestShow_InvalidConfig(t *testing.T) {
	root := newPackage(t, "mypkg")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".dkpkg.yaml"), []byte("version: 7\n"), 0o644))

	_, err := execute(t, "", "show", "--root", root)
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Contains(t, exitErr.Suggestion, "dkpkg config validate")
}

func TestGet(t *testing.T) {
	root := newPackage(t, "mypkg")

	tests := []struct {
		key  string
		want string
	}{
		{"source", filepath.Join(root, "mypkg")},
		{"build_dir", filepath.Join(root, "build")},
		{"name", "mypkg"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out, err := execute(t, "", "get", tt.key, "--root", root)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	t.Run("django_models", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "mypkg", "models"), 0o755))
		out, err := execute(t, "", "get", "django_models", "--root", root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "mypkg", "models")+"\n", out)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := execute(t, "", "get", "nope", "--root", root)
		require.Error(t, err)
		assert.True(t, errors.Is(err, layout.ErrUnknownField))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

func TestGet_Completion(t *testing.T) {
	got, directive := completeKeys(getCmd, nil, "build")
	assert.Equal(t, []string{
		"build", "build_coverage", "build_dir", "build_docs",
		"build_lintscore", "build_meta", "build_pytest",
	}, got)
	assert.NotZero(t, directive)

	got, _ = completeKeys(getCmd, nil, "django_m")
	assert.Contains(t, got, "django_models")

	got, _ = completeKeys(getCmd, []string{"source"}, "")
	assert.Empty(t, got)
}

func TestGet_HelpListsKeys(t *testing.T) {
	for _, want := range []string{"  django_static\n", "  coverage_dir -> build_coverage\n", "  source_less\n"} {
		assert.Contains(t, getCmd.Long+"\n", want)
	}
}

func TestMissingAndMkdirs(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "missing", "--root", root)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 13)
	assert.Equal(t, "docs", lines[0])
	assert.Contains(t, lines, "build/lintscore")

	_, err = execute(t, "", "missing", "--root", root, "--check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingDirectories))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	out, err = execute(t, "", "mkdirs", "--root", root, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "would create mypkg/templates\n")
	_, statErr := os.Stat(filepath.Join(root, "docs"))
	assert.True(t, os.IsNotExist(statErr), "dry run created a directory")

	out, err = execute(t, "", "mkdirs", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, 13, strings.Count(out, "created "))
	assert.DirExists(t, filepath.Join(root, "build", "pytest"))
	assert.DirExists(t, filepath.Join(root, "mypkg", "static"))

	out, err = execute(t, "", "mkdirs", "--root", root)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "", "missing", "--root", root, "--check")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestINI(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "ini", "--root", root)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 17)
	assert.Equal(t, "[dkbuild]", lines[0])
	assert.Equal(t, "root = "+root, lines[1])
	assert.Equal(t, "django_static = "+filepath.Join(root, "mypkg", "static"), lines[16])

	out, err = execute(t, "", "ini", "--root", root, "--section", "paths")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[paths]\n"))
}

func TestINI_Output(t *testing.T) {
	root := newPackage(t, "mypkg")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".dkpkg.yaml"),
		[]byte("ini:\n  file: layout.ini\n  section: build\n"), 0o644))

	out, err := execute(t, "", "ini", "--root", root)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(root, "layout.ini"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[build]\n"))

	// "-" forces stdout even when a file is configured.
	out, err = execute(t, "", "ini", "--root", root, "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[build]\n"))
}

func TestStatus(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "status", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Package:    mypkg (name: mypkg)\n")
	assert.Contains(t, out, "Django:     no\n")
	assert.Contains(t, out, "Models:     (none)\n")
	assert.Contains(t, out, "Missing:    13 directories\n")

	require.NoError(t, os.MkdirAll(filepath.Join(root, "mypkg", "models"), 0o755))
	out, err = execute(t, "", "status", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Django:     yes\n")
	assert.Contains(t, out, "Models:     mypkg/models\n")
	assert.Contains(t, out, "Missing:    12 directories\n")
}

func TestPick(t *testing.T) {
	root := newPackage(t, "mypkg")

	orig := findEntry
	t.Cleanup(func() { findEntry = orig })

	var labels []string
	findEntry = func(entries []layout.Entry, label func(int) string, preview func(i, w, h int) string) (int, error) {
		for i := range entries {
			labels = append(labels, label(i))
		}
		assert.Empty(t, preview(-1, 0, 0))
		for i, e := range entries {
			if e.Key == "docs" {
				assert.Contains(t, preview(i, 80, 20), "missing")
				return i, nil
			}
		}
		return -1, errors.New("docs not offered")
	}

	out, err := execute(t, "", "pick", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "docs")+"\n", out)
	assert.NotContains(t, labels, "name")
	assert.NotContains(t, labels, "package_name")
	assert.Contains(t, labels, "build_meta")
}

func TestTree(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, err := execute(t, "", "tree", "a/b/c", "a/b/d", "a/e")
		require.NoError(t, err)
		assert.Equal(t, "└── a\n    ├── b\n    │   ├── c\n    │   └── d\n    └── e\n", out)
	})

	t.Run("stdin yaml", func(t *testing.T) {
		out, err := execute(t, "x/y\n\n# skipped\nx/z\n", "tree", "--yaml")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Contains(t, got, "x")
		assert.NotContains(t, got, "#")
	})

	t.Run("file", func(t *testing.T) {
		list := filepath.Join(t.TempDir(), "paths.txt")
		require.NoError(t, os.WriteFile(list, []byte("p/q\n"), 0o644))
		out, err := execute(t, "", "tree", "-f", list)
		require.NoError(t, err)
		assert.Equal(t, "└── p\n    └── q\n", out)
	})
}

func TestConfigCommands(t *testing.T) {
	root := newPackage(t, "mypkg")

	out, err := execute(t, "", "config", "path", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, "(none)\n", out)

	out, err = execute(t, "", "config", "validate", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "defaults apply")

	cfgPath := filepath.Join(root, ".dkpkg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("overrides:\n  build: /tmp/out\n"), 0o644))

	out, err = execute(t, "", "config", "path", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	out, err = execute(t, "", "config", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "build: /tmp/out")
	assert.Contains(t, out, "section: dkbuild")

	out, err = execute(t, "", "config", "show", "--root", root, "-f", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[ini]")

	out, err = execute(t, "", "config", "validate", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 0\nconvention: flat\n"), 0o644))
	out, err = execute(t, "", "config", "validate", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.Contains(t, out, "2 error(s)")
	assert.Contains(t, out, "invalid convention: flat")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	for _, want := range []string{"dkpkg version", "commit:", "built:", "go:"} {
		assert.Contains(t, out, want)
	}
}

func TestGenDoc(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	_, err := execute(t, "", "gen-doc", "--dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "dkpkg_show.md"))

	data, err := os.ReadFile(filepath.Join(dir, "dkpkg_config_validate.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `title: "config validate"`)
}
