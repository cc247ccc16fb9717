package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "comet.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[lexer]
line_comments = ["#"]
block_comments = false
extensions = [".py"]

[lint]
rules = ["header", "todo"]

[lint.header]
lines = ["Copyright 2026 Acme"]

[lint.todo]
markers = ["HACK"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	hash, slash, block := cfg.Lexer.Styles()
	if !hash || slash || block {
		t.Errorf("Styles = %v %v %v", hash, slash, block)
	}
	if len(cfg.Lint.Rules) != 2 || cfg.Lint.Rules[0] != "header" {
		t.Errorf("Rules = %v", cfg.Lint.Rules)
	}
	if len(cfg.Lint.Header.Lines) != 1 {
		t.Errorf("Header.Lines = %v", cfg.Lint.Header.Lines)
	}
	if len(cfg.Lint.Todo.Markers) != 1 || cfg.Lint.Todo.Markers[0] != "HACK" {
		t.Errorf("Todo.Markers = %v", cfg.Lint.Todo.Markers)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[lexer]\nbogus = 1\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "not [valid")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	hash, slash, block := cfg.Lexer.Styles()
	if !hash || !slash || !block {
		t.Errorf("default styles = %v %v %v, want all on", hash, slash, block)
	}
	if !cfg.Lexer.WantsFile("anything.xyz") {
		t.Error("default config must accept every extension")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[lint]\nrules = []\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find = %q, %v, %v", path, ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file in %q", path, root)
	}
}

func TestDiscoverFallsBack(t *testing.T) {
	// isolated directory without comet.toml anywhere above is not
	// guaranteed in CI, so only check the explicit-miss branch via Find
	// on a path whose parents we control
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		// a comet.toml above the temp dir was picked up; still a valid result
		return
	}
	if len(cfg.Lexer.LineComments) != 2 {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestWantsFile(t *testing.T) {
	c := LexerConfig{Extensions: []string{".py", ".sh"}}
	if !c.WantsFile("x/y/z.py") || c.WantsFile("z.go") {
		t.Error("extension filter broken")
	}
}
