package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/thoreinstein/dkpkg/internal/layout"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestInit(t *testing.T) {
	Init()

	// Check defaults are set
	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if got := viper.GetString("ini.section"); got != DefaultSection {
		t.Errorf("expected ini.section default %q, got %q", DefaultSection, got)
	}
	if got := viper.GetString("convention"); got != "sibling" {
		t.Errorf("expected convention default sibling, got %q", got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	Init()

	// Load with no config file should not error
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Version != 1 || cfg.INI.Section != DefaultSection {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
	if cfg.Overrides == nil {
		t.Error("expected non-nil overrides map")
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".dkpkg.yaml")
	writeFile(t, configPath, "convention: nested\nini:\n  file: out.ini\noverrides:\n  build: /tmp/out\n  source_js: frontend\n")

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Convention != "nested" {
		t.Errorf("Convention = %q, want nested", cfg.Convention)
	}
	if cfg.INI.File != "out.ini" {
		t.Errorf("INI.File = %q, want out.ini", cfg.INI.File)
	}
	if cfg.INI.Section != DefaultSection {
		t.Errorf("INI.Section = %q, want default %q", cfg.INI.Section, DefaultSection)
	}
	if len(cfg.Overrides) != 2 || cfg.Overrides["build"] != "/tmp/out" {
		t.Errorf("Overrides = %v", cfg.Overrides)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".dkpkg.toml")
	writeFile(t, configPath, "version = 1\n\n[ini]\nsection = \"paths\"\n\n[overrides]\ndocs = \"manual\"\n")

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.INI.Section != "paths" {
		t.Errorf("INI.Section = %q, want paths", cfg.INI.Section)
	}
	if cfg.Overrides["docs"] != "manual" {
		t.Errorf("Overrides[docs] = %q, want manual", cfg.Overrides["docs"])
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DKPKG_CONVENTION", "nested")
	t.Setenv("DKPKG_INI_SECTION", "fromenv")

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Convention != "nested" {
		t.Errorf("Convention = %q, want nested", cfg.Convention)
	}
	if cfg.INI.Section != "fromenv" {
		t.Errorf("INI.Section = %q, want fromenv", cfg.INI.Section)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()

	// Load with non-existent config file should error
	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: "2: unsupported config version",
		},
		{
			name:    "invalid convention",
			content: "convention: flat\n",
			wantErr: "invalid convention: flat",
		},
		{
			name:    "empty section",
			content: "ini:\n  section: \" \"\n",
			wantErr: "ini section must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init()

			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			writeFile(t, configPath, tt.content)

			_, err := Load(configPath)
			if err == nil {
				t.Error("Load() expected error, got nil")
			} else if err.Error() != "validating config: "+tt.wantErr {
				t.Errorf("Load() error = %v, want %v", err, "validating config: "+tt.wantErr)
			}
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "config_a.yaml")
	writeFile(t, fileA, "version: 1\nconvention: nested\n")

	Init()
	if _, err := Load(fileA); err != nil {
		t.Fatalf("First Load failed: %v", err)
	}

	// Re-Initialize. This SHOULD clear the file loaded above.
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Second Load failed: %v", err)
	}
	if cfg.Convention != "sibling" {
		t.Errorf("Convention = %q after Init, want sibling; state leaked from %s", cfg.Convention, viper.ConfigFileUsed())
	}
}

func TestFind(t *testing.T) {
	userDir := t.TempDir()
	t.Setenv("DKPKG_CONFIG_DIR", userDir)

	root := t.TempDir()
	if got := Find(root); got != "" {
		t.Errorf("Find() = %q with no files, want empty", got)
	}

	userFile := filepath.Join(userDir, "config.yaml")
	writeFile(t, userFile, "version: 1\n")
	if got := Find(root); got != userFile {
		t.Errorf("Find() = %q, want user file %q", got, userFile)
	}

	tomlFile := filepath.Join(root, ".dkpkg.toml")
	writeFile(t, tomlFile, "version = 1\n")
	if got := Find(root); got != tomlFile {
		t.Errorf("Find() = %q, want project file %q", got, tomlFile)
	}

	yamlFile := filepath.Join(root, ".dkpkg.yaml")
	writeFile(t, yamlFile, "version: 1\n")
	if got := Find(root); got != yamlFile {
		t.Errorf("Find() = %q, want %q to win over toml", got, yamlFile)
	}
}

func TestUserDir_DefaultsToXDG(t *testing.T) {
	t.Setenv("DKPKG_CONFIG_DIR", "")
	if got := UserDir(); filepath.Base(got) != AppName {
		t.Errorf("UserDir() = %q, want a %s directory", got, AppName)
	}
}

func TestLayoutOverrides(t *testing.T) {
	cfg := Default()
	cfg.Overrides = map[string]string{
		"build":     "/tmp/out",
		"source_js": "frontend",
		"docs_dir":  "manual",
		"name":      "renamed",
		"flavor":    "vanilla",
		"docs":      "",
	}

	got := cfg.LayoutOverrides("/work/pkg")
	want := layout.Overrides{
		"build":     "/tmp/out",
		"source_js": "/work/pkg/frontend",
		"docs_dir":  "/work/pkg/manual",
		"name":      "renamed",
		"flavor":    "vanilla",
		"docs":      "",
	}
	if len(got) != len(want) {
		t.Fatalf("LayoutOverrides() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("LayoutOverrides()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestLayoutConvention(t *testing.T) {
	cfg := &Config{}
	if got := cfg.LayoutConvention(); got != layout.ConventionSibling {
		t.Errorf("LayoutConvention() = %q, want sibling", got)
	}
	cfg.Convention = "nested"
	if got := cfg.LayoutConvention(); got != layout.ConventionNested {
		t.Errorf("LayoutConvention() = %q, want nested", got)
	}
}

func TestRead_DoesNotValidate(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	writeFile(t, configPath, "version: 0\nconvention: flat\n")

	Init()

	cfg, err := Read(configPath)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if errs := Validate(cfg); len(errs) != 2 {
		t.Errorf("Validate() = %v, want 2 errors", errs)
	}
}
