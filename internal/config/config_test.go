package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	g := cfg.Formatter.NumericGrouping
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Decimal.Stride", g.Decimal.Stride, 3},
		{"Decimal.MinDigits", g.Decimal.MinDigits, 5},
		{"Hexadecimal.Stride", g.Hexadecimal.Stride, 4},
		{"Hexadecimal.MinDigits", g.Hexadecimal.MinDigits, 8},
		{"Binary.Stride", g.Binary.Stride, 8},
		{"Binary.MinDigits", g.Binary.MinDigits, 10},
		{"Jobs", cfg.Jobs, 0},
		{"Cache.Enabled", cfg.Cache.Enabled, false},
		{"Lint.Severity", cfg.Lint.Severity, ""},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origWd); err != nil {
			t.Fatal(err)
		}
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `formatter:
  numeric_grouping:
    decimal:
      stride: 4
rules:
  disabled:
    - group_numeric_literals
jobs: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.Formatter.NumericGrouping.Decimal.Stride; got != 4 {
		t.Errorf("Decimal.Stride: got %d, want 4", got)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs: got %d, want 2", cfg.Jobs)
	}
	if len(cfg.Rules.Disabled) != 1 || cfg.Rules.Disabled[0] != "group_numeric_literals" {
		t.Errorf("Rules.Disabled: got %v", cfg.Rules.Disabled)
	}

	// Verify unspecified fields retain defaults.
	if got := cfg.Formatter.NumericGrouping.Decimal.MinDigits; got != 5 {
		t.Errorf("Decimal.MinDigits: got %d, want 5 (default)", got)
	}
	if got := cfg.Formatter.NumericGrouping.Hexadecimal.Stride; got != 4 {
		t.Errorf("Hexadecimal.Stride: got %d, want 4 (default)", got)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".swiftfmt.toml")

	doc := `jobs = 3

[rules]
enabled = ["return_void_instead_of_empty_tuple", "no_access_level_on_extension_declaration"]

[lint]
severity = "error"

[formatter.numeric_grouping.binary]
stride = 4
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Jobs != 3 {
		t.Errorf("Jobs: got %d, want 3", cfg.Jobs)
	}
	if len(cfg.Rules.Enabled) != 2 || cfg.Rules.Enabled[0] != "return_void_instead_of_empty_tuple" {
		t.Errorf("Rules.Enabled: got %v", cfg.Rules.Enabled)
	}
	if cfg.Lint.Severity != "error" {
		t.Errorf("Lint.Severity: got %q, want error", cfg.Lint.Severity)
	}
	if got := cfg.Formatter.NumericGrouping.Binary; got.Stride != 4 || got.MinDigits != 10 {
		t.Errorf("Binary: got %+v, want stride 4 and default min digits", got)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	// Use an empty temp dir so no config file is discovered.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	if cfg.Formatter != want.Formatter {
		t.Errorf("expected default config, got %+v", cfg.Formatter)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("jobs: 1\n")

	// Create every candidate; swiftfmt.yml (first in order) should win.
	for _, name := range configFileNames {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Remove files one at a time; the next name in order takes over.
	for i, name := range configFileNames {
		got := Discover(dir)
		want := filepath.Join(dir, name)
		if got != want {
			t.Errorf("step %d: Discover = %q, want %q", i, got, want)
		}
		if err := os.Remove(want); err != nil {
			t.Fatal(err)
		}
	}

	if got := Discover(dir); got != "" {
		t.Errorf("after removing all: Discover = %q, want empty string", got)
	}
}

func TestDiscoverNoFiles(t *testing.T) {
	dir := t.TempDir()
	got := Discover(dir)
	if got != "" {
		t.Errorf("Discover in empty dir: got %q, want empty string", got)
	}
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".swiftfmt.yml")

	yaml := `cache:
  enabled: true
  dir: /tmp/swiftfmt-cache
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/swiftfmt-cache" {
		t.Errorf("Cache: got %+v", cfg.Cache)
	}

	// Unspecified fields should retain defaults.
	if cfg.Formatter != DefaultConfig().Formatter {
		t.Errorf("Formatter: got %+v, want defaults", cfg.Formatter)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")

	if err := os.WriteFile(path, []byte("jobs = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	if err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadFileEmptyPath(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Error("expected error for empty path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Empty file should result in all defaults.
	want := DefaultConfig()
	if cfg.Formatter != want.Formatter {
		t.Errorf("expected default config for empty file, got %+v", cfg.Formatter)
	}
}

func TestLoadLintSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lint.yml")

	yaml := `lint:
  severity: warning
  exclude:
    - group_numeric_literals
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Lint.Severity != "warning" {
		t.Errorf("Lint.Severity: got %q, want warning", cfg.Lint.Severity)
	}
	if len(cfg.Lint.Exclude) != 1 || cfg.Lint.Exclude[0] != "group_numeric_literals" {
		t.Errorf("Lint.Exclude: got %v, want [group_numeric_literals]", cfg.Lint.Exclude)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"severity", func(c *Config) { c.Lint.Severity = "fatal" }},
		{"jobs", func(c *Config) { c.Jobs = -1 }},
		{"stride", func(c *Config) { c.Formatter.NumericGrouping.Hexadecimal.Stride = -4 }},
		{"enabled and disabled", func(c *Config) {
			c.Rules.Enabled = []string{"group_numeric_literals"}
			c.Rules.Disabled = []string{"group_numeric_literals"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate: got %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swiftfmt.yml")

	if err := os.WriteFile(path, []byte("lint:\n  severity: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load: got %v, want ErrInvalid", err)
	}
}

func TestDiscoverAncestor(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "Sources", "App")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, ".swiftfmt.toml")
	if err := os.WriteFile(want, []byte("jobs = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Discover(nested); got != want {
		t.Errorf("Discover(%s) = %q, want %q", nested, got, want)
	}

	// A closer file wins over the ancestor.
	closer := filepath.Join(nested, "swiftfmt.yml")
	if err := os.WriteFile(closer, []byte("jobs: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(nested); got != closer {
		t.Errorf("Discover(%s) = %q, want %q", nested, got, closer)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"yaml top level", "job: 2\n"},
		{"yaml nested", "formatter:\n  numeric_grouping:\n    octal:\n      stride: 3\n"},
		{"toml top level", "job = 2\n"},
		{"toml nested", "[cache]\npath = \"/tmp\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "swiftfmt.yml"
			if tt.name[:4] == "toml" {
				name = ".swiftfmt.toml"
			}
			if _, err := Parse(name, []byte(tt.data)); err == nil {
				t.Errorf("Parse(%q): expected error for unknown key", tt.data)
			}
		})
	}
}

func TestParseExtensionIsCaseInsensitive(t *testing.T) {
	cfg, err := Parse("CONFIG.TOML", []byte("jobs = 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs: got %d, want 4", cfg.Jobs)
	}
}
