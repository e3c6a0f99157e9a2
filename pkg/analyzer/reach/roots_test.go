package reach

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/deadwood/pkg/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestSelectRootsExplicit(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "web", "entry.html"))

	cfg := config.DefaultConfig().Roots
	cfg.Entries = []string{"web/entry.html", "web/missing.html"}

	roots := SelectRoots(root, nil, nil, cfg)
	assert.Equal(t, abs(root, "web/entry.html"), roots, "missing explicit entries are dropped, not fatal")
}

func TestSelectRootsExplicitAbsolute(t *testing.T) {
	root := t.TempDir()
	entry := filepath.Join(root, "main.js")
	touch(t, entry)

	cfg := config.DefaultConfig().Roots
	cfg.Entries = []string{entry}

	assert.Equal(t, []string{entry}, SelectRoots(root, nil, nil, cfg))
}

func TestSelectRootsConventional(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "public", "index.html"))
	touch(t, filepath.Join(root, "server.js"))

	cfg := config.DefaultConfig().Roots
	roots := SelectRoots(root, nil, nil, cfg)
	assert.Equal(t, abs(root, "public/index.html", "server.js"), roots, "candidate probe order is preserved")
}

func TestSelectRootsScanDirIndexProbe(t *testing.T) {
	root := t.TempDir()
	scanDir := filepath.Join(root, "site")
	touch(t, filepath.Join(scanDir, "index.htm"))

	cfg := config.DefaultConfig().Roots
	roots := SelectRoots(root, []string{scanDir}, nil, cfg)
	assert.Equal(t, []string{filepath.Join(scanDir, "index.htm")}, roots)
}

func TestSelectRootsMarkupFallback(t *testing.T) {
	root := t.TempDir()
	files := abs(root, "a.css", "b.html", "c.js", "d.htm", "e.html")

	cfg := config.DefaultConfig().Roots
	cfg.MarkupFallback = 2

	roots := SelectRoots(root, nil, files, cfg)
	assert.Equal(t, abs(root, "b.html", "d.htm"), roots, "first N markup files in sorted order")
}

func TestSelectRootsExplicitAllMissingFallsThrough(t *testing.T) {
	root := t.TempDir()
	files := abs(root, "page.html")

	cfg := config.DefaultConfig().Roots
	cfg.Entries = []string{"nope.html"}
	cfg.MarkupFallback = 10

	roots := SelectRoots(root, nil, files, cfg)
	assert.Equal(t, abs(root, "page.html"), roots, "empty explicit set falls back to convention, then markup heuristic")
}

func TestSelectRootsNothingFound(t *testing.T) {
	root := t.TempDir()
	files := abs(root, "only.js")

	cfg := config.DefaultConfig().Roots
	assert.Empty(t, SelectRoots(root, nil, files, cfg))
}
