// Package config loads comet.toml, the per-project configuration for the
// lexer's comment styles and the enabled lint rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root of comet.toml.
type Config struct {
	Lexer LexerConfig `toml:"lexer"`
	Lint  LintConfig  `toml:"lint"`
}

// LexerConfig selects comment syntaxes and the file extensions to scan.
type LexerConfig struct {
	LineComments  []string `toml:"line_comments"`  // any of "#", "//"
	BlockComments bool     `toml:"block_comments"` // "/* ... */"
	Extensions    []string `toml:"extensions"`     // e.g. [".py", ".cfg"]
}

// LintConfig selects and configures rules.
type LintConfig struct {
	Rules  []string     `toml:"rules"`
	Header HeaderConfig `toml:"header"`
	Todo   TodoConfig   `toml:"todo"`
}

type HeaderConfig struct {
	Lines []string `toml:"lines"`
}

type TodoConfig struct {
	Markers []string `toml:"markers"`
}

// Default returns the configuration used when no comet.toml is found:
// every comment style, every extension the walker encounters, the todo
// check on, header and trailing checks off.
func Default() Config {
	return Config{
		Lexer: LexerConfig{
			LineComments:  []string{"#", "//"},
			BlockComments: true,
		},
		Lint: LintConfig{
			Rules: []string{"todo"},
		},
	}
}

// Load parses the TOML file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Find walks up from startDir to locate comet.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "comet.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest comet.toml above startDir, falling back to
// Default when none exists.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// Styles converts the lexer section into lexer option flags.
func (c LexerConfig) Styles() (hash, slash, block bool) {
	for _, lc := range c.LineComments {
		switch lc {
		case "#":
			hash = true
		case "//":
			slash = true
		}
	}
	return hash, slash, c.BlockComments
}

// WantsFile reports whether the walker should scan the given path.
// An empty extension list accepts every file.
func (c LexerConfig) WantsFile(path string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, want := range c.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
