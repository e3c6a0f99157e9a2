// Package config loads deadwood configuration from TOML, YAML, or JSON.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mwhitfield/deadwood/pkg/lang"
)

// Config holds all configuration options for deadwood.
type Config struct {
	// Scan controls file collection.
	Scan ScanConfig `koanf:"scan"`

	// Roots controls entry-point selection.
	Roots RootsConfig `koanf:"roots"`

	// Output controls report rendering.
	Output OutputConfig `koanf:"output"`

	// Stamp controls header stamping of analyzed files.
	Stamp StampConfig `koanf:"stamp"`

	// Jobs is the extraction worker count (0 = 2x NumCPU).
	Jobs int `koanf:"jobs"`
}

// ScanConfig controls which files are collected.
type ScanConfig struct {
	Dirs          []string      `koanf:"dirs"`
	Extensions    []string      `koanf:"extensions"`
	IncludeHidden bool          `koanf:"include_hidden"`
	Exclude       ExcludeConfig `koanf:"exclude"`
}

// ExcludeConfig defines file exclusion rules, in gitignore syntax.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns"`
	Gitignore bool     `koanf:"gitignore"`
}

// RootsConfig controls entry-point selection for reachability.
type RootsConfig struct {
	// Entries are explicit entry files, absolute or relative to the root.
	Entries []string `koanf:"entries"`

	// Candidates are conventional entry-point paths probed when no explicit
	// entries are given.
	Candidates []string `koanf:"candidates"`

	// MarkupFallback caps how many discovered markup files seed the root set
	// when neither explicit entries nor candidates match. This is a
	// best-effort heuristic, not a guarantee of true entry points.
	MarkupFallback int `koanf:"markup_fallback"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format      string `koanf:"format"` // text, json, markdown
	Color       bool   `koanf:"color"`
	Verbose     bool   `koanf:"verbose"`
	ResultsFile string `koanf:"results_file"`
}

// StampConfig controls header stamping.
type StampConfig struct {
	// Rename moves unused files aside to *.bak instead of leaving them in
	// place with an IN_USE: FALSE header.
	Rename bool `koanf:"rename"`
	DryRun bool `koanf:"dry_run"`
}

// DefaultRootCandidates is the conventional entry-point probe list, in
// priority order.
func DefaultRootCandidates() []string {
	return []string{
		"index.html", "public/index.html", "web/index.html", "frontend/index.html",
		"server.js", "api/server.js", "app.js", "main.js",
		"main.tsx", "src/main.tsx", "src/index.tsx",
		"app.py", "wsgi.py", "run.py",
	}
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Dirs:       []string{"."},
			Extensions: lang.KnownExtensions(),
			Exclude: ExcludeConfig{
				Patterns: []string{
					"node_modules/",
					"vendor/",
					"dist/",
					"build/",
					"__pycache__/",
				},
				Gitignore: false,
			},
		},
		Roots: RootsConfig{
			Candidates:     DefaultRootCandidates(),
			MarkupFallback: 10,
		},
		Output: OutputConfig{
			Format:      "text",
			Color:       true,
			ResultsFile: "deadwood-results.txt",
		},
		Stamp: StampConfig{
			Rename: true,
		},
	}
}

// Load loads configuration from a file, layered over defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations or returns defaults.
func LoadOrDefault() *Config {
	names := []string{
		"deadwood.toml",
		"deadwood.yaml",
		"deadwood.yml",
		"deadwood.json",
		".deadwood.toml",
		".deadwood.yaml",
		".deadwood.yml",
		".deadwood.json",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// AllowedExtensions returns the allowlist as a normalized lookup set.
func (c *Config) AllowedExtensions() map[string]bool {
	set := make(map[string]bool, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		set[lang.Normalize(ext)] = true
	}
	return set
}
