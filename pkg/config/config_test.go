package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"."}, cfg.Scan.Dirs)
	assert.Contains(t, cfg.Scan.Extensions, ".js")
	assert.Contains(t, cfg.Scan.Extensions, ".py")
	assert.False(t, cfg.Scan.IncludeHidden)
	assert.Equal(t, 10, cfg.Roots.MarkupFallback)
	assert.Contains(t, cfg.Roots.Candidates, "index.html")
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "deadwood-results.txt", cfg.Output.ResultsFile)
	assert.True(t, cfg.Stamp.Rename)
	assert.Zero(t, cfg.Jobs)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deadwood.toml")
	content := `
jobs = 4

[scan]
dirs = ["web", "api"]
extensions = [".js", ".html"]
include_hidden = true

[roots]
entries = ["web/index.html"]
markup_fallback = 3

[output]
format = "json"
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, []string{"web", "api"}, cfg.Scan.Dirs)
	assert.Equal(t, []string{".js", ".html"}, cfg.Scan.Extensions)
	assert.True(t, cfg.Scan.IncludeHidden)
	assert.Equal(t, []string{"web/index.html"}, cfg.Roots.Entries)
	assert.Equal(t, 3, cfg.Roots.MarkupFallback)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)

	// Unset keys keep defaults.
	assert.Equal(t, "deadwood-results.txt", cfg.Output.ResultsFile)
	assert.True(t, cfg.Stamp.Rename)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deadwood.yaml")
	content := `
scan:
  dirs: ["frontend"]
roots:
  markup_fallback: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"frontend"}, cfg.Scan.Dirs)
	assert.Equal(t, 1, cfg.Roots.MarkupFallback)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestAllowedExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scan.Extensions = []string{"JS", ".Html", "py"}

	set := cfg.AllowedExtensions()
	assert.True(t, set[".js"])
	assert.True(t, set[".html"])
	assert.True(t, set[".py"])
	assert.False(t, set[".css"])
}
